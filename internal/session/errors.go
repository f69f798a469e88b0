package session

import "errors"

var (
	// ErrTestNotFound is returned by Build for an unknown test id.
	ErrTestNotFound = errors.New("test not found")
	// ErrInvalidNavigation is returned for out-of-range question or section
	// indices. State is left untouched.
	ErrInvalidNavigation = errors.New("navigation index out of range")
	// ErrUnknownQuestion is returned when an answer or review operation
	// references a question id the session does not hold. No response slot
	// is ever created implicitly.
	ErrUnknownQuestion = errors.New("question not in session")
	// ErrEmptySession is returned when scoring a session that materialized
	// zero questions.
	ErrEmptySession = errors.New("session has no questions")
)
