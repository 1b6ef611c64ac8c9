package rubric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRubricFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeRubricFile(t, dir, "miss_universe", `{
		"pageant": "Miss Universe",
		"version": "2025.1",
		"dimensions": [
			{"name": "Directness & Clarity", "weight": 1.0, "description": "Answers first."},
			{"name": "Authenticity & Specificity", "weight": 1.2, "description": "Personal, not generic."}
		],
		"cap_rules": [
			{"if_dimension": "Directness & Clarity", "below": 4, "then_max_overall": 6}
		],
		"genericness_signals": ["world peace"]
	}`)

	store := NewStore(dir)
	r := store.Load("miss_universe")

	if r.Version != "2025.1" {
		t.Errorf("version = %q, want 2025.1", r.Version)
	}
	if len(r.Dimensions) != 2 {
		t.Errorf("dimensions = %d, want 2", len(r.Dimensions))
	}
	if len(r.CapRules) != 1 || r.CapRules[0].ThenMaxOverall != 6 {
		t.Errorf("cap rules not loaded: %+v", r.CapRules)
	}
}

func TestStoreLoadFallbacks(t *testing.T) {
	dir := t.TempDir()
	writeRubricFile(t, dir, "corrupt", `{not json`)
	writeRubricFile(t, dir, "empty_dims", `{"pageant": "X", "version": "1", "dimensions": []}`)

	store := NewStore(dir)

	for _, name := range []string{"missing", "corrupt", "empty_dims"} {
		t.Run(name, func(t *testing.T) {
			r := store.Load(name)
			if r.Version != FallbackVersion {
				t.Errorf("version = %q, want %q", r.Version, FallbackVersion)
			}
			if len(r.Dimensions) != 8 {
				t.Errorf("fallback dimensions = %d, want 8", len(r.Dimensions))
			}
		})
	}

	// Fallback names are titleized from the requested rubric name
	if got := store.Load("miss_universe").PageantName; got != "Miss Universe" {
		t.Errorf("pageant name = %q, want Miss Universe", got)
	}
}

func TestFormatForPrompt(t *testing.T) {
	r := Rubric{
		PageantName: "Miss Universe",
		Version:     "1",
		Dimensions: []Dimension{
			{Name: "Directness & Clarity", Weight: 1.0, Description: "Answers first."},
			{Name: "Authenticity & Specificity", Weight: 1.2, Description: "Personal."},
		},
		CapRules: []CapRule{
			{IfDimension: "Directness & Clarity", Below: 4, ThenMaxOverall: 6},
		},
		GenericnessSignals: []string{"world peace"},
	}

	text := FormatForPrompt(r)

	if !strings.Contains(text, "1. **Directness & Clarity** — Answers first.") {
		t.Errorf("unweighted dimension rendered wrong:\n%s", text)
	}
	if !strings.Contains(text, "2. **Authenticity & Specificity** (weight: 1.2x) — Personal.") {
		t.Errorf("weighted dimension rendered wrong:\n%s", text)
	}
	if !strings.Contains(text, "If Directness & Clarity scores below 4, cap overall score at 6.") {
		t.Errorf("cap rule missing:\n%s", text)
	}
	if !strings.Contains(text, "- world peace") {
		t.Errorf("genericness signal missing:\n%s", text)
	}
}

func TestFormatForPromptOmitsEmptySections(t *testing.T) {
	store := NewStore(t.TempDir())
	text := FormatForPrompt(store.Default("miss_universe"))

	if strings.Contains(text, "CAP RULES") {
		t.Error("default rubric should have no cap rules section")
	}
	if strings.Contains(text, "GENERICNESS SIGNALS") {
		t.Error("default rubric should have no genericness section")
	}
}
