package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SelectionKind tags the answer variant so scoring can switch exhaustively
// instead of inspecting a loosely typed value.
type SelectionKind string

const (
	SelectionUnanswered SelectionKind = "unanswered"
	SelectionSingle     SelectionKind = "single"
	SelectionMultiple   SelectionKind = "multiple"
)

// Selection is a tagged answer value: no answer, one option index, or a set
// of option indices for multi-select questions.
type Selection struct {
	Kind    SelectionKind `bson:"kind"`
	Index   int           `bson:"index,omitempty"`
	Indices []int         `bson:"indices,omitempty"`
}

func Unanswered() Selection {
	return Selection{Kind: SelectionUnanswered}
}

func SingleChoice(index int) Selection {
	return Selection{Kind: SelectionSingle, Index: index}
}

func MultiChoice(indices ...int) Selection {
	return Selection{Kind: SelectionMultiple, Indices: indices}
}

func (s Selection) IsAnswered() bool {
	return s.Kind == SelectionSingle || s.Kind == SelectionMultiple
}

// Matches compares two selections. Multi-select answers compare as sets, so
// option order does not matter. Unanswered never matches anything.
func (s Selection) Matches(other Selection) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case SelectionSingle:
		return s.Index == other.Index
	case SelectionMultiple:
		if len(s.Indices) != len(other.Indices) {
			return false
		}
		a := append([]int(nil), s.Indices...)
		b := append([]int(nil), other.Indices...)
		sort.Ints(a)
		sort.Ints(b)
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return len(a) > 0
	default:
		return false
	}
}

// MarshalJSON renders the selection in the wire shape the clients use:
// null for unanswered, a bare index for single choice, an array for
// multi-select.
func (s Selection) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SelectionSingle:
		return json.Marshal(s.Index)
	case SelectionMultiple:
		if s.Indices == nil {
			return json.Marshal([]int{})
		}
		return json.Marshal(s.Indices)
	default:
		return []byte("null"), nil
	}
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*s = Unanswered()
	case float64:
		*s = SingleChoice(int(v))
	case []any:
		indices := make([]int, 0, len(v))
		for _, e := range v {
			n, ok := e.(float64)
			if !ok {
				return fmt.Errorf("selection array element %v is not an index", e)
			}
			indices = append(indices, int(n))
		}
		*s = MultiChoice(indices...)
	default:
		return fmt.Errorf("selection must be null, an index, or an index array")
	}
	return nil
}

// UserResponse tracks one question's interaction state during a session.
// The session holds exactly one response per question, order-aligned with
// the question sequence.
type UserResponse struct {
	QuestionID       string    `bson:"question_id" json:"question_id"`
	Selected         Selection `bson:"selected_answer" json:"selected_answer"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	MarkedForReview  bool      `bson:"is_marked_for_review" json:"is_marked_for_review"`
	Visited          bool      `bson:"is_visited" json:"is_visited"`
}

// PaletteStatus is the four-state view of a response used by the question
// palette. It is always derived from the response fields, never stored.
type PaletteStatus string

const (
	PaletteNotVisited PaletteStatus = "not_visited"
	PaletteUnanswered PaletteStatus = "unanswered"
	PaletteAnswered   PaletteStatus = "answered"
	PaletteMarked     PaletteStatus = "marked_for_review"
)

func (r UserResponse) PaletteStatus() PaletteStatus {
	switch {
	case r.MarkedForReview:
		return PaletteMarked
	case r.Selected.IsAnswered():
		return PaletteAnswered
	case r.Visited:
		return PaletteUnanswered
	default:
		return PaletteNotVisited
	}
}
