package model

// PersonalStory is a single experience the contestant can draw from for
// authentic personal anchors.
type PersonalStory struct {
	Title     string `json:"title"`      // short label, e.g. "Teaching in Rural Zambia"
	Text      string `json:"text"`       // the story in 2-4 sentences
	KeyLesson string `json:"key_lesson"` // one-sentence takeaway
}

// Persona is a contestant profile, persisted one JSON file per persona.
type Persona struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Country         string          `json:"country"`
	Platform        string          `json:"platform"` // advocacy platform, e.g. "Mental health for youth"
	Values          []string        `json:"values"`
	PersonalStories []PersonalStory `json:"personal_stories"`
}

// PersonaSummary is the lightweight listing shape for dropdowns.
type PersonaSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
