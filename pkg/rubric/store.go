package rubric

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store loads named rubric definitions from a directory of JSON files.
// Rubric unavailability never aborts a coaching session: any load or
// shape error yields the built-in default instead.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// FallbackVersion marks a rubric that came from the built-in default.
const FallbackVersion = "fallback"

var defaultDimensions = []Dimension{
	{Name: "Directness & Clarity", Weight: 1.0, Description: "First sentence answers the question directly."},
	{Name: "Structure & Flow", Weight: 1.0, Description: "Logical arc from answer to close."},
	{Name: "Authenticity & Specificity", Weight: 1.2, Description: "Personal and specific, not generic."},
	{Name: "Leadership & Agency", Weight: 1.0, Description: "Shows vision or action."},
	{Name: "Worldview & Relevance", Weight: 0.8, Description: "Global framing when appropriate."},
	{Name: "Closing Strength", Weight: 1.0, Description: "Memorable, quotable close."},
	{Name: "Conciseness & Time-Fit", Weight: 1.0, Description: "Within word budget."},
	{Name: "Credibility & Safety", Weight: 0.8, Description: "No unsupported claims."},
}

// Load returns the rubric for the given pageant name, falling back to
// the built-in default on any failure.
func (s *Store) Load(name string) Rubric {
	path := filepath.Join(s.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return s.Default(name)
	}

	var r Rubric
	if err := json.Unmarshal(data, &r); err != nil {
		return s.Default(name)
	}
	if len(r.Dimensions) == 0 {
		return s.Default(name)
	}
	if r.PageantName == "" {
		r.PageantName = titleize(name)
	}
	return r
}

// Default returns the hardcoded fallback rubric.
func (s *Store) Default(name string) Rubric {
	dims := make([]Dimension, len(defaultDimensions))
	copy(dims, defaultDimensions)
	return Rubric{
		PageantName: titleize(name),
		Version:     FallbackVersion,
		Dimensions:  dims,
	}
}

// FormatForPrompt renders dimensions in order with weight annotations
// and cap-rule bullets for injection into the critic request.
func FormatForPrompt(r Rubric) string {
	var b strings.Builder
	b.WriteString("SCORING DIMENSIONS (score each 0-10):\n")
	for i, dim := range r.Dimensions {
		weightNote := ""
		if dim.Weight != 1.0 {
			weightNote = fmt.Sprintf(" (weight: %gx)", dim.Weight)
		}
		b.WriteString(fmt.Sprintf("%d. **%s**%s — %s\n", i+1, dim.Name, weightNote, dim.Description))
	}

	if len(r.CapRules) > 0 {
		b.WriteString("\nCAP RULES:\n")
		for _, rule := range r.CapRules {
			b.WriteString(fmt.Sprintf("- If %s scores below %g, cap overall score at %g.\n",
				rule.IfDimension, rule.Below, rule.ThenMaxOverall))
		}
	}

	if len(r.GenericnessSignals) > 0 {
		b.WriteString("\nGENERICNESS SIGNALS (flag the answer if any apply):\n")
		for _, sig := range r.GenericnessSignals {
			b.WriteString("- " + sig + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func titleize(name string) string {
	parts := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
