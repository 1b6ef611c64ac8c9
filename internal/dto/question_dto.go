package dto

// RandomQuestionRequest filters the draw. Empty or "any" fields match
// everything. SessionID keys repeat-avoidance across draws.
type RandomQuestionRequest struct {
	SessionID    string `json:"session_id" validate:"omitempty"`
	QuestionType string `json:"question_type" validate:"omitempty"`
	Difficulty   string `json:"difficulty" validate:"omitempty"`
	Pageant      string `json:"pageant" validate:"omitempty"`
}

type QuestionResponse struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	QuestionType string   `json:"question_type"`
	Difficulty   string   `json:"difficulty"`
	Pageant      string   `json:"pageant"`
	ThemeTags    []string `json:"theme_tags,omitempty"`
	SessionID    string   `json:"session_id,omitempty"`
}

// QuestionOptionsResponse lists the distinct filter values in the bank,
// for populating dropdowns.
type QuestionOptionsResponse struct {
	Types        []string `json:"types"`
	Difficulties []string `json:"difficulties"`
	Pageants     []string `json:"pageants"`
}
