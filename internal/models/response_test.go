package models

import (
	"encoding/json"
	"testing"
)

func TestSelectionJSONWireShape(t *testing.T) {
	testCases := []struct {
		name      string
		selection Selection
		wantJSON  string
	}{
		{"unanswered is null", Unanswered(), "null"},
		{"single is a bare index", SingleChoice(2), "2"},
		{"single index zero", SingleChoice(0), "0"},
		{"multiple is an array", MultiChoice(0, 3), "[0,3]"},
		{"empty multiple is an empty array", MultiChoice(), "[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.selection)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(data) != tc.wantJSON {
				t.Errorf("Expected %s, got %s", tc.wantJSON, data)
			}

			var back Selection
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unexpected error decoding %s: %v", data, err)
			}
			if back.Kind != tc.selection.Kind {
				t.Errorf("Expected kind %s after round trip, got %s", tc.selection.Kind, back.Kind)
			}
		})
	}
}

func TestSelectionUnmarshalRejectsBadShapes(t *testing.T) {
	for _, raw := range []string{`"two"`, `{"index": 2}`, `[1, "two"]`, `true`} {
		var s Selection
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			t.Errorf("Expected error for %s, got none", raw)
		}
	}
}

func TestSelectionMatches(t *testing.T) {
	testCases := []struct {
		name string
		a, b Selection
		want bool
	}{
		{"same single index", SingleChoice(1), SingleChoice(1), true},
		{"different single index", SingleChoice(1), SingleChoice(2), false},
		{"multiple compares as a set", MultiChoice(2, 0), MultiChoice(0, 2), true},
		{"multiple subset does not match", MultiChoice(0), MultiChoice(0, 2), false},
		{"empty multiple never matches", MultiChoice(), MultiChoice(), false},
		{"unanswered never matches", Unanswered(), Unanswered(), false},
		{"kind mismatch", SingleChoice(0), MultiChoice(0), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Matches(tc.b); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPaletteStatusDerivation(t *testing.T) {
	testCases := []struct {
		name     string
		response UserResponse
		want     PaletteStatus
	}{
		{"untouched", UserResponse{Selected: Unanswered()}, PaletteNotVisited},
		{"visited but unanswered", UserResponse{Selected: Unanswered(), Visited: true}, PaletteUnanswered},
		{"answered", UserResponse{Selected: SingleChoice(1), Visited: true}, PaletteAnswered},
		{"marked wins over answered", UserResponse{Selected: SingleChoice(1), Visited: true, MarkedForReview: true}, PaletteMarked},
		{"marked without an answer", UserResponse{Selected: Unanswered(), Visited: true, MarkedForReview: true}, PaletteMarked},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.response.PaletteStatus(); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}
