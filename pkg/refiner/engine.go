package refiner

import (
	"context"
	"errors"
	"fmt"

	"pageant-coach-be/internal/pkg/logger"
	"pageant-coach-be/pkg/exemplar"
	"pageant-coach-be/pkg/llm"
	"pageant-coach-be/pkg/rubric"
)

// Stage identifies one node of the refinement pipeline.
type Stage string

const (
	StageQuestionUnderstanding Stage = "question_understanding"
	StageDrafting              Stage = "drafting"
	StageCritic                Stage = "critic"
	StageRewrite               Stage = "rewrite"
	StageCoachReport           Stage = "coach_report"
	StageGenerateExemplar      Stage = "generate_exemplar"
	StageDone                  Stage = "done"
)

// Generation roles, keyed into the temperature table.
const (
	RoleQuestionAnalysis = "question_analysis"
	RoleDrafting         = "drafting"
	RoleCritic           = "critic"
	RoleRewrite          = "rewrite"
	RoleExemplar         = "exemplar"
)

// DefaultTemperatures is the per-role temperature table. Scoring runs
// near-deterministic, showcase generation runs hotter.
var DefaultTemperatures = map[string]float64{
	RoleQuestionAnalysis: 0.2,
	RoleDrafting:         0.7,
	RoleCritic:           0.1,
	RoleRewrite:          0.6,
	RoleExemplar:         0.75,
}

// WordsPerSecond converts a spoken time limit to an advisory word budget.
const WordsPerSecond = 2.5

// Config carries the per-engine knobs so test and production setups can
// coexist; nothing here is process-wide ambient state.
type Config struct {
	RubricName   string
	Pageant      string
	Temperatures map[string]float64
}

// Engine runs the refinement pipeline: a fixed six-stage graph with one
// conditional loop edge (rewrite -> critic). One Run owns its State;
// independent runs may execute concurrently.
type Engine struct {
	provider  llm.LLMProvider
	rubrics   *rubric.Store
	exemplars *exemplar.Library
	cfg       Config
	logger    logger.ILogger
}

func NewEngine(provider llm.LLMProvider, rubrics *rubric.Store, exemplars *exemplar.Library, cfg Config, log logger.ILogger) *Engine {
	if cfg.Temperatures == nil {
		cfg.Temperatures = DefaultTemperatures
	}
	if cfg.RubricName == "" {
		cfg.RubricName = "miss_universe"
	}
	if cfg.Pageant == "" {
		cfg.Pageant = "Miss Universe"
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Engine{
		provider:  provider,
		rubrics:   rubrics,
		exemplars: exemplars,
		cfg:       cfg,
		logger:    log,
	}
}

// Run executes the pipeline to completion. It fails only when a
// generation call fails; the error is always a tagged
// *llm.GenerationError and no partial state is returned as success.
func (e *Engine) Run(ctx context.Context, st State) (State, error) {
	if st.TimeLimit == 0 {
		st.TimeLimit = DefaultTimeLimit
	}
	if st.StylePreset == "" {
		st.StylePreset = StyleStructuredNarrative
	}

	stage := StageQuestionUnderstanding
	for stage != StageDone {
		e.logger.Debug("REFINER", "running stage", map[string]interface{}{
			"stage":     string(stage),
			"iteration": st.IterationCount,
		})

		delta, err := e.runStage(ctx, stage, &st)
		if err != nil {
			e.logger.Error("REFINER", "stage failed", map[string]interface{}{
				"stage": string(stage),
				"error": err.Error(),
			})
			return State{}, err
		}

		if stage == StageCritic {
			// Scores always reflect the critique of the same pass; a
			// failed parse must not leave a stale score steering the loop.
			st.CriticScores = delta.CriticScores
			delta.CriticScores = nil
		}
		merge(&st, delta)

		stage = nextStage(stage, &st)
	}

	return st, nil
}

// nextStage is the transition function. Keeping it separate from the
// stage bodies makes the graph topology testable on its own.
func nextStage(current Stage, st *State) Stage {
	switch current {
	case StageQuestionUnderstanding:
		return StageDrafting
	case StageDrafting:
		return StageCritic
	case StageCritic:
		return StageRewrite
	case StageRewrite:
		return decideAfterRewrite(st)
	case StageCoachReport:
		return StageGenerateExemplar
	case StageGenerateExemplar:
		return StageDone
	default:
		return StageDone
	}
}

func (e *Engine) runStage(ctx context.Context, stage Stage, st *State) (State, error) {
	switch stage {
	case StageQuestionUnderstanding:
		return e.runQuestionUnderstanding(ctx, st)
	case StageDrafting:
		return e.runDrafting(ctx, st)
	case StageCritic:
		return e.runCritic(ctx, st)
	case StageRewrite:
		return e.runRewrite(ctx, st)
	case StageCoachReport:
		return e.runCoachReport(ctx, st)
	case StageGenerateExemplar:
		return e.runGenerateExemplar(ctx, st)
	default:
		return State{}, llm.NewGenerationError(llm.KindBadResponse, fmt.Errorf("unknown stage %q", stage))
	}
}

// generate issues one generation call with the role's temperature.
// Every failure crossing this boundary is a tagged GenerationError.
func (e *Engine) generate(ctx context.Context, role, prompt string) (string, error) {
	temp, ok := e.cfg.Temperatures[role]
	if !ok {
		temp = 0.7
	}
	reply, err := e.provider.Generate(ctx, prompt, llm.WithTemperature(temp))
	if err != nil {
		var genErr *llm.GenerationError
		if !errors.As(err, &genErr) {
			err = llm.NewGenerationError(llm.KindBadResponse, err)
		}
		return "", err
	}
	return reply, nil
}

func (e *Engine) wordBudget(timeLimit int) int {
	return int(float64(timeLimit) * WordsPerSecond)
}
