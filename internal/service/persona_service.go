package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pageant-coach-be/internal/dto"
	"pageant-coach-be/internal/model"
	"pageant-coach-be/internal/repository/contract"
)

type IPersonaService interface {
	List(ctx context.Context) (*dto.PersonaListResponse, error)
	Show(ctx context.Context, id string) (*dto.PersonaResponse, error)
	Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error)
	Delete(ctx context.Context, id string) error
	// FormatContext renders a persona as the grounding block injected
	// into drafting prompts. Empty id returns "".
	FormatContext(ctx context.Context, id string) (string, error)
}

type personaService struct {
	repo contract.PersonaRepository
}

func NewPersonaService(repo contract.PersonaRepository) IPersonaService {
	return &personaService{repo: repo}
}

func (s *personaService) List(ctx context.Context) (*dto.PersonaListResponse, error) {
	personas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.PersonaSummary, 0, len(personas))
	for _, p := range personas {
		summaries = append(summaries, model.PersonaSummary{ID: p.ID, Name: p.Name, Country: p.Country})
	}
	return &dto.PersonaListResponse{Personas: summaries}, nil
}

func (s *personaService) Show(ctx context.Context, id string) (*dto.PersonaResponse, error) {
	persona, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "persona not found")
	}
	return toPersonaResponse(persona), nil
}

func (s *personaService) Create(ctx context.Context, req *dto.CreatePersonaRequest) (*dto.PersonaResponse, error) {
	persona := &model.Persona{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Country:         req.Country,
		Platform:        req.Platform,
		Values:          req.Values,
		PersonalStories: toStories(req.PersonalStories),
	}
	if err := s.repo.Save(ctx, persona); err != nil {
		return nil, err
	}
	return toPersonaResponse(persona), nil
}

func (s *personaService) Update(ctx context.Context, id string, req *dto.UpdatePersonaRequest) (*dto.PersonaResponse, error) {
	persona, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "persona not found")
	}

	if req.Name != "" {
		persona.Name = req.Name
	}
	if req.Country != "" {
		persona.Country = req.Country
	}
	if req.Platform != "" {
		persona.Platform = req.Platform
	}
	if req.Values != nil {
		persona.Values = req.Values
	}
	if req.PersonalStories != nil {
		persona.PersonalStories = toStories(req.PersonalStories)
	}

	if err := s.repo.Save(ctx, persona); err != nil {
		return nil, err
	}
	return toPersonaResponse(persona), nil
}

func (s *personaService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fiber.NewError(fiber.StatusNotFound, "persona not found")
	}
	return nil
}

func (s *personaService) FormatContext(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	persona, err := s.repo.Load(ctx, id)
	if err != nil {
		return "", err
	}
	if persona == nil {
		return "", fiber.NewError(fiber.StatusNotFound, "persona not found")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CONTESTANT PROFILE:\n")
	fmt.Fprintf(&b, "Name: %s\n", persona.Name)
	if persona.Country != "" {
		fmt.Fprintf(&b, "Country: %s\n", persona.Country)
	}
	if persona.Platform != "" {
		fmt.Fprintf(&b, "Advocacy platform: %s\n", persona.Platform)
	}
	if len(persona.Values) > 0 {
		fmt.Fprintf(&b, "Core values: %s\n", strings.Join(persona.Values, ", "))
	}
	if len(persona.PersonalStories) > 0 {
		b.WriteString("Personal stories to draw from:\n")
		for _, story := range persona.PersonalStories {
			fmt.Fprintf(&b, "- %s: %s", story.Title, story.Text)
			if story.KeyLesson != "" {
				fmt.Fprintf(&b, " (lesson: %s)", story.KeyLesson)
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func toPersonaResponse(p *model.Persona) *dto.PersonaResponse {
	return &dto.PersonaResponse{
		ID:              p.ID,
		Name:            p.Name,
		Country:         p.Country,
		Platform:        p.Platform,
		Values:          p.Values,
		PersonalStories: p.PersonalStories,
	}
}

func toStories(inputs []dto.PersonalStoryInput) []model.PersonalStory {
	stories := make([]model.PersonalStory, 0, len(inputs))
	for _, in := range inputs {
		stories = append(stories, model.PersonalStory{Title: in.Title, Text: in.Text, KeyLesson: in.KeyLesson})
	}
	return stories
}
