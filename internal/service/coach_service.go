package service

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pageant-coach-be/internal/dto"
	"pageant-coach-be/internal/pkg/logger"
	"pageant-coach-be/pkg/refiner"
)

type ICoachService interface {
	Refine(ctx context.Context, req *dto.RefineAnswerRequest) (*dto.RefineAnswerResponse, error)
}

type coachService struct {
	engine   *refiner.Engine
	personas IPersonaService
	logger   logger.ILogger
}

func NewCoachService(engine *refiner.Engine, personas IPersonaService, log logger.ILogger) ICoachService {
	if log == nil {
		log = logger.NewNop()
	}
	return &coachService{engine: engine, personas: personas, logger: log}
}

func (s *coachService) Refine(ctx context.Context, req *dto.RefineAnswerRequest) (*dto.RefineAnswerResponse, error) {
	if strings.TrimSpace(req.RawAnswer) == "" {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "raw_answer must not be blank")
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "question must not be blank")
	}

	personaContext := ""
	if req.PersonaID != "" {
		formatted, err := s.personas.FormatContext(ctx, req.PersonaID)
		if err != nil {
			return nil, err
		}
		personaContext = formatted
	}

	st := refiner.State{
		Question:       req.Question,
		RawAnswer:      req.RawAnswer,
		TimeLimit:      req.TimeLimit,
		StylePreset:    req.StylePreset,
		PersonaContext: personaContext,
		QuestionID:     req.QuestionID,
		InputMode:      req.InputMode,
	}

	s.logger.Info("CoachService", "starting refinement run", map[string]interface{}{
		"time_limit":  st.TimeLimit,
		"style":       st.StylePreset,
		"has_persona": personaContext != "",
	})

	result, err := s.engine.Run(ctx, st)
	if err != nil {
		return nil, err
	}

	return &dto.RefineAnswerResponse{
		Question:         result.Question,
		QuestionAnalysis: result.QuestionAnalysis,
		DraftAnswer:      result.DraftAnswer,
		Critique:         result.Critique,
		RefinedAnswer:    result.RefinedAnswer,
		CoachReport:      result.CoachReport,
		ExemplarAnswer:   result.ExemplarAnswer,
		CriticScores:     result.CriticScores,
		ExemplarRef:      result.ExemplarRef,
		Iterations:       result.IterationCount,
		TimeLimit:        result.TimeLimit,
		StylePreset:      result.StylePreset,
	}, nil
}
