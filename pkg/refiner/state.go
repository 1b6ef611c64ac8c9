package refiner

// Style presets supported by the drafting and rewrite stages.
const (
	StyleStructuredNarrative = "structured_narrative"
	StyleValuesSharedAgency  = "values_shared_agency"
)

// DefaultTimeLimit is used when the caller does not set one.
const DefaultTimeLimit = 30

// ValidTimeLimits are the supported answer lengths in seconds.
var ValidTimeLimits = []int{20, 30, 40}

// ExemplarRef is the reduced exemplar match recorded on the state.
// Only structural notes ever reach a prompt.
type ExemplarRef struct {
	ID              string `json:"id"`
	WinnerName      string `json:"winner_name"`
	Year            int    `json:"year"`
	StructuralNotes string `json:"structural_notes"`
}

// State is the record threaded through one coaching run. Inputs are set
// once by the caller; each stage writes its own output fields exactly
// once (RefinedAnswer is overwritten on each loop pass). A State is
// owned by a single run and never shared.
type State struct {
	// Inputs
	Question       string `json:"question"`
	RawAnswer      string `json:"raw_answer"`
	TimeLimit      int    `json:"time_limit"`   // 20, 30 or 40 seconds
	StylePreset    string `json:"style_preset"` // structured_narrative or values_shared_agency
	PersonaContext string `json:"persona_context,omitempty"`

	// Input metadata (tracking only, never read by stages)
	QuestionID string `json:"question_id,omitempty"`
	InputMode  string `json:"input_mode,omitempty"` // "text" or "voice"

	// Stage outputs
	QuestionAnalysis string `json:"question_analysis,omitempty"`
	DraftAnswer      string `json:"draft_answer,omitempty"`
	Critique         string `json:"critique,omitempty"`
	RefinedAnswer    string `json:"refined_answer,omitempty"`
	CoachReport      string `json:"coach_report,omitempty"`
	ExemplarAnswer   string `json:"exemplar_answer,omitempty"`

	CriticScores *StructuredScore `json:"critic_scores,omitempty"`
	ExemplarRef  *ExemplarRef     `json:"exemplar_ref,omitempty"`

	// Control: incremented once per critic pass, capped by the loop policy
	IterationCount int `json:"iteration_count"`
}

// answerUnderReview returns the text the critic and rewrite stages work
// on: the latest rewrite if a loop already happened, else the draft.
func (s *State) answerUnderReview() string {
	if s.RefinedAnswer != "" {
		return s.RefinedAnswer
	}
	return s.DraftAnswer
}

// merge applies a stage's partial update onto the running state. Zero
// fields in the delta mean "not produced by this stage".
func merge(dst *State, delta State) {
	if delta.QuestionAnalysis != "" {
		dst.QuestionAnalysis = delta.QuestionAnalysis
	}
	if delta.DraftAnswer != "" {
		dst.DraftAnswer = delta.DraftAnswer
	}
	if delta.Critique != "" {
		dst.Critique = delta.Critique
	}
	if delta.RefinedAnswer != "" {
		dst.RefinedAnswer = delta.RefinedAnswer
	}
	if delta.CoachReport != "" {
		dst.CoachReport = delta.CoachReport
	}
	if delta.ExemplarAnswer != "" {
		dst.ExemplarAnswer = delta.ExemplarAnswer
	}
	if delta.CriticScores != nil {
		dst.CriticScores = delta.CriticScores
	}
	if delta.ExemplarRef != nil {
		dst.ExemplarRef = delta.ExemplarRef
	}
	if delta.IterationCount > 0 {
		dst.IterationCount = delta.IterationCount
	}
}
