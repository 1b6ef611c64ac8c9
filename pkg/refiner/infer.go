package refiner

import "strings"

// DefaultQuestionType is used when no keyword matches the analysis text.
const DefaultQuestionType = "personal"

// typeKeywords maps question types to the keywords that suggest them.
// Checked in order so the more specific types win over "personal".
var typeKeywords = []struct {
	qtype    string
	keywords []string
}{
	{"advocacy", []string{"advocacy", "cause", "platform", "passionate about"}},
	{"leadership", []string{"leadership", "leader", "role model", "influence"}},
	{"issues_based", []string{"issues-based", "issues_based", "social issue", "global", "controvers", "policy", "current event"}},
	{"fun_creative", []string{"fun/creative", "fun_creative", "lighthearted", "humor", "creative", "playful"}},
	{"personal", []string{"personal"}},
}

// InferQuestionType guesses the question type from the free-text
// analysis by keyword search. This is a best-effort heuristic, not a
// classifier: callers must treat the result as fuzzy, and it defaults
// to "personal" when nothing matches.
func InferQuestionType(analysis string) string {
	lower := strings.ToLower(analysis)
	for _, entry := range typeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.qtype
			}
		}
	}
	return DefaultQuestionType
}

// themeKeywords are the tags the exemplar library knows about.
var themeKeywords = []string{
	"education", "environment", "climate", "resilience", "youth",
	"equality", "health", "mental health", "leadership", "community",
	"courage", "family", "technology", "empowerment", "poverty",
}

// InferThemeTags scans the question and its analysis for known theme
// tags, for ranking exemplar matches. Best-effort, may return nothing.
func InferThemeTags(question, analysis string) []string {
	lower := strings.ToLower(question + " " + analysis)
	var tags []string
	for _, kw := range themeKeywords {
		if strings.Contains(lower, kw) {
			tags = append(tags, kw)
		}
	}
	return tags
}
