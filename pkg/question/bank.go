package question

import (
	"encoding/json"
	"math/rand"
	"os"
)

// Question is one entry from the question bank catalog.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	PageantType  string   `json:"pageant_type"`
	QuestionType string   `json:"question_type"`
	Difficulty   string   `json:"difficulty"`
	Tags         []string `json:"tags,omitempty"`
}

type catalog struct {
	Questions []Question `json:"questions"`
}

// FilterOption is a (value, label) pair for UI dropdowns.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Bank loads and filters the question catalog. A missing or corrupt
// catalog falls back to a small built-in starter set; "no data found"
// is never fatal here.
type Bank struct {
	path string
}

func NewBank(path string) *Bank {
	return &Bank{path: path}
}

var builtinQuestions = []Question{
	{ID: "builtin-001", Text: "What cause are you most passionate about, and why?", PageantType: "general", QuestionType: "advocacy", Difficulty: "beginner", Tags: []string{"advocacy", "values"}},
	{ID: "builtin-002", Text: "Tell us about a moment that changed how you see yourself.", PageantType: "general", QuestionType: "personal", Difficulty: "beginner", Tags: []string{"resilience", "growth"}},
	{ID: "builtin-003", Text: "What does leadership mean to you?", PageantType: "general", QuestionType: "leadership", Difficulty: "intermediate", Tags: []string{"leadership"}},
	{ID: "builtin-004", Text: "If you could change one thing about how young people use social media, what would it be?", PageantType: "general", QuestionType: "issues_based", Difficulty: "intermediate", Tags: []string{"youth", "technology"}},
	{ID: "builtin-005", Text: "If you could have dinner with anyone in history, who would it be and why?", PageantType: "general", QuestionType: "fun_creative", Difficulty: "beginner", Tags: []string{"creativity"}},
}

// Load returns all questions, preferring the catalog file.
func (b *Bank) Load() []Question {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return builtinQuestions
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil || len(c.Questions) == 0 {
		return builtinQuestions
	}
	return c.Questions
}

// Random returns one random question, optionally filtered. A filter value
// of "" or "any" matches everything. If the filters (plus exclusions)
// empty the pool, the pool resets to the full set.
func (b *Bank) Random(pageantType, questionType, difficulty string, excludeIDs map[string]bool) Question {
	all := b.Load()
	pool := filter(all, pageantType, questionType, difficulty, excludeIDs)
	if len(pool) == 0 {
		pool = all
	}
	return pool[rand.Intn(len(pool))]
}

func filter(questions []Question, pageantType, questionType, difficulty string, excludeIDs map[string]bool) []Question {
	matched := make([]Question, 0, len(questions))
	for _, q := range questions {
		if !matchesFilter(q.PageantType, pageantType) {
			continue
		}
		if !matchesFilter(q.QuestionType, questionType) {
			continue
		}
		if !matchesFilter(q.Difficulty, difficulty) {
			continue
		}
		if excludeIDs[q.ID] {
			continue
		}
		matched = append(matched, q)
	}
	return matched
}

func matchesFilter(value, want string) bool {
	return want == "" || want == "any" || value == want
}

// FilterOptions returns available filter values for UI dropdowns.
func FilterOptions() map[string][]FilterOption {
	return map[string][]FilterOption{
		"pageant_type": {
			{Value: "any", Label: "Any Pageant"},
			{Value: "miss_universe", Label: "Miss Universe"},
			{Value: "miss_world", Label: "Miss World"},
			{Value: "miss_usa", Label: "Miss USA"},
			{Value: "general", Label: "General"},
		},
		"question_type": {
			{Value: "any", Label: "Any Type"},
			{Value: "personal", Label: "Personal"},
			{Value: "issues_based", Label: "Issues-Based"},
			{Value: "advocacy", Label: "Advocacy"},
			{Value: "leadership", Label: "Leadership"},
			{Value: "fun_creative", Label: "Fun / Creative"},
		},
		"difficulty": {
			{Value: "any", Label: "Any Difficulty"},
			{Value: "beginner", Label: "Beginner"},
			{Value: "intermediate", Label: "Intermediate"},
			{Value: "advanced", Label: "Advanced"},
		},
	}
}
