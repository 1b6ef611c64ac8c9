package question

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeBank(t *testing.T, questions []Question) *Bank {
	t.Helper()
	data, err := json.Marshal(map[string][]Question{"questions": questions})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "question_bank.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return NewBank(path)
}

var testQuestions = []Question{
	{ID: "q1", Text: "A", PageantType: "miss_universe", QuestionType: "advocacy", Difficulty: "beginner"},
	{ID: "q2", Text: "B", PageantType: "miss_universe", QuestionType: "personal", Difficulty: "advanced"},
	{ID: "q3", Text: "C", PageantType: "general", QuestionType: "advocacy", Difficulty: "beginner"},
}

func TestLoadFallsBackToBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Bank
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) *Bank {
				return NewBank(filepath.Join(t.TempDir(), "missing.json"))
			},
		},
		{
			name: "corrupt file",
			setup: func(t *testing.T) *Bank {
				path := filepath.Join(t.TempDir(), "bad.json")
				os.WriteFile(path, []byte("{oops"), 0o644)
				return NewBank(path)
			},
		},
		{
			name: "empty catalog",
			setup: func(t *testing.T) *Bank {
				return writeBank(t, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := tt.setup(t).Load()
			if len(questions) != len(builtinQuestions) {
				t.Errorf("got %d questions, want %d builtins", len(questions), len(builtinQuestions))
			}
		})
	}
}

func TestRandomRespectsFilters(t *testing.T) {
	bank := writeBank(t, testQuestions)

	for i := 0; i < 20; i++ {
		q := bank.Random("miss_universe", "advocacy", "beginner", nil)
		if q.ID != "q1" {
			t.Fatalf("draw %d: got %s, want q1 (only match)", i, q.ID)
		}
	}
}

func TestRandomWildcardFilters(t *testing.T) {
	bank := writeBank(t, testQuestions)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		q := bank.Random("any", "", "any", nil)
		seen[q.ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("wildcard draws hit %d distinct questions, want 3", len(seen))
	}
}

func TestRandomExcludesAskedUntilExhausted(t *testing.T) {
	bank := writeBank(t, testQuestions)

	q := bank.Random("", "advocacy", "", map[string]bool{"q1": true})
	if q.ID != "q3" {
		t.Errorf("got %s, want q3 (q1 excluded)", q.ID)
	}

	// All advocacy questions excluded: the pool resets to the full set
	q = bank.Random("", "advocacy", "", map[string]bool{"q1": true, "q3": true})
	if q.ID == "" {
		t.Error("expected a question after pool reset")
	}
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions()

	for _, key := range []string{"pageant_type", "question_type", "difficulty"} {
		values, ok := opts[key]
		if !ok || len(values) == 0 {
			t.Errorf("missing options for %s", key)
			continue
		}
		if values[0].Value != "any" {
			t.Errorf("%s first option = %s, want any", key, values[0].Value)
		}
	}
}
