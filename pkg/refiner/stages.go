package refiner

import (
	"context"
	"fmt"

	"pageant-coach-be/pkg/rubric"
)

// Each stage is a pure function of state-in to partial-state-out; the
// engine merges the returned delta into the running state.

// runQuestionUnderstanding classifies the question and identifies what
// judges are testing.
func (e *Engine) runQuestionUnderstanding(ctx context.Context, st *State) (State, error) {
	prompt := buildQuestionAnalysisPrompt(st.Question)
	reply, err := e.generate(ctx, RoleQuestionAnalysis, prompt)
	if err != nil {
		return State{}, err
	}
	return State{QuestionAnalysis: reply}, nil
}

// runDrafting generates a strong first draft from the raw answer.
func (e *Engine) runDrafting(ctx context.Context, st *State) (State, error) {
	prompt := buildDraftingPrompt(st, e.wordBudget(st.TimeLimit))
	reply, err := e.generate(ctx, RoleDrafting, prompt)
	if err != nil {
		return State{}, err
	}
	return State{DraftAnswer: reply}, nil
}

// runCritic scores the answer under review against the rubric, attempts
// a structured parse of the response, and looks up an exemplar match
// keyed by the inferred question type. Rubric and exemplar data are
// loaded fresh per pass and never fatal.
func (e *Engine) runCritic(ctx context.Context, st *State) (State, error) {
	answer := st.answerUnderReview()
	rub := e.rubrics.Load(e.cfg.RubricName)
	if rub.Version == rubric.FallbackVersion {
		e.logger.Warn("CRITIC", "rubric unavailable, using fallback", map[string]interface{}{
			"rubric": e.cfg.RubricName,
		})
	}

	prompt := buildCriticPrompt(st, answer, rubric.FormatForPrompt(rub), e.wordBudget(st.TimeLimit))
	reply, err := e.generate(ctx, RoleCritic, prompt)
	if err != nil {
		return State{}, err
	}

	delta := State{
		Critique:       reply,
		IterationCount: st.IterationCount + 1,
	}

	if score := ParseStructuredScore(reply); score != nil {
		delta.CriticScores = score
	} else {
		e.logger.Debug("CRITIC", "no structured score in critique, text fallback applies", nil)
	}

	qtype := InferQuestionType(st.QuestionAnalysis)
	tags := InferThemeTags(st.Question, st.QuestionAnalysis)
	if match := e.exemplars.FindMatch(qtype, tags, e.cfg.Pageant); match != nil {
		delta.ExemplarRef = &ExemplarRef{
			ID:              match.Record.ID,
			WinnerName:      match.Record.WinnerName,
			Year:            match.Record.Year,
			StructuralNotes: match.Record.StructuralNotes,
		}
		e.logger.Debug("CRITIC", "exemplar matched", map[string]interface{}{
			"exemplar_id": match.Record.ID,
			"rank":        match.Rank,
			"qtype":       qtype,
		})
	}

	return delta, nil
}

// runRewrite applies the critic's edits and the style preset, producing
// (or overwriting) the refined answer.
func (e *Engine) runRewrite(ctx context.Context, st *State) (State, error) {
	prompt := buildRewritePrompt(st, st.answerUnderReview(), e.wordBudget(st.TimeLimit))
	reply, err := e.generate(ctx, RoleRewrite, prompt)
	if err != nil {
		return State{}, err
	}
	return State{RefinedAnswer: reply}, nil
}

// runCoachReport combines rubric scores, a change summary and delivery
// notes into the final report. Moderate creativity, so the drafting role.
func (e *Engine) runCoachReport(ctx context.Context, st *State) (State, error) {
	prompt := buildCoachReportPrompt(st)
	reply, err := e.generate(ctx, RoleDrafting, prompt)
	if err != nil {
		return State{}, err
	}
	return State{CoachReport: reply}, nil
}

// runGenerateExemplar writes the model winning answer, optionally guided
// by the matched exemplar's structural notes, never its wording.
func (e *Engine) runGenerateExemplar(ctx context.Context, st *State) (State, error) {
	reference := ""
	if st.ExemplarRef != nil {
		reference = formatExemplarReference(st.ExemplarRef)
	}
	prompt := buildExemplarPrompt(st, reference, e.wordBudget(st.TimeLimit))
	reply, err := e.generate(ctx, RoleExemplar, prompt)
	if err != nil {
		return State{}, err
	}
	return State{ExemplarAnswer: reply}, nil
}

// formatExemplarReference renders the reduced match for prompt
// injection. The reduced ref carries structural notes only, so the
// content-leakage invariant holds by construction.
func formatExemplarReference(ref *ExemplarRef) string {
	return fmt.Sprintf(
		"EXEMPLAR REFERENCE (for structural guidance only — do NOT copy wording):\n- Source: %s, %d\n- Structural notes: %s",
		ref.WinnerName, ref.Year, ref.StructuralNotes)
}
