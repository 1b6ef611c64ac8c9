package exemplar

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Record is one reference "winning answer" from the catalog. AnswerText,
// if stored, must never be surfaced to generation prompts or to the end
// user; only StructuralNotes may be injected.
type Record struct {
	ID              string   `json:"id"`
	Pageant         string   `json:"pageant"`
	QuestionType    string   `json:"question_type"`
	Year            int      `json:"year"`
	WinnerName      string   `json:"winner_name"`
	ThemeTags       []string `json:"theme_tags"`
	StructuralNotes string   `json:"structural_notes"`
	AnswerText      string   `json:"answer_text,omitempty"`
}

// Match is a selected record plus how it was selected.
type Match struct {
	Record Record
	Rank   string // "type_and_theme", "type", "recent"
}

type catalog struct {
	Exemplars []Record `json:"exemplars"`
}

// Library loads the exemplar catalog fresh per lookup. A missing or
// corrupt catalog is never fatal; lookups just return no match.
type Library struct {
	path string
}

func NewLibrary(path string) *Library {
	return &Library{path: path}
}

func (l *Library) loadAll() []Record {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return c.Exemplars
}

// FindMatch returns the best reference for a question type and theme tags.
//
// Matching priority:
//  1. pageant filter (falling back to the full set if it would empty the pool)
//  2. exact question_type match ranked by case-insensitive tag overlap
//  3. any question_type match
//  4. most recent record, or nil if the catalog is empty
func (l *Library) FindMatch(questionType string, themeTags []string, pageant string) *Match {
	exemplars := l.loadAll()
	if len(exemplars) == 0 {
		return nil
	}

	candidates := make([]Record, 0, len(exemplars))
	for _, e := range exemplars {
		if e.Pageant == pageant {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		candidates = exemplars
	}

	typeMatches := make([]Record, 0, len(candidates))
	for _, e := range candidates {
		if e.QuestionType == questionType {
			typeMatches = append(typeMatches, e)
		}
	}

	if len(typeMatches) > 0 && len(themeTags) > 0 {
		tagSet := make(map[string]bool, len(themeTags))
		for _, t := range themeTags {
			tagSet[strings.ToLower(t)] = true
		}
		overlap := func(r Record) int {
			n := 0
			for _, t := range r.ThemeTags {
				if tagSet[strings.ToLower(t)] {
					n++
				}
			}
			return n
		}
		// Stable sort so ties keep catalog order
		sort.SliceStable(typeMatches, func(i, j int) bool {
			return overlap(typeMatches[i]) > overlap(typeMatches[j])
		})
		return &Match{Record: typeMatches[0], Rank: "type_and_theme"}
	}

	if len(typeMatches) > 0 {
		return &Match{Record: typeMatches[0], Rank: "type"}
	}

	// No type match: fall back to the most recent record as a loose reference
	best := candidates[0]
	for _, e := range candidates[1:] {
		if e.Year > best.Year {
			best = e
		}
	}
	return &Match{Record: best, Rank: "recent"}
}

// FormatReference renders only metadata and structural notes for prompt
// injection. This is the sole sanctioned path for exemplar content to
// reach a generation prompt; the literal answer text never leaves here.
func FormatReference(rec *Record) string {
	if rec == nil {
		return ""
	}
	lines := []string{
		"EXEMPLAR REFERENCE (for structural guidance only — do NOT copy wording):",
		fmt.Sprintf("- Source: %s, %s %d", orUnknown(rec.WinnerName), rec.Pageant, rec.Year),
		fmt.Sprintf("- Question type: %s", orUnknown(rec.QuestionType)),
		fmt.Sprintf("- Structural notes: %s", orUnknown(rec.StructuralNotes)),
	}
	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
