package dto

import "pageant-coach-be/internal/model"

type CreatePersonaRequest struct {
	Name            string               `json:"name" validate:"required"`
	Country         string               `json:"country" validate:"omitempty"`
	Platform        string               `json:"platform" validate:"omitempty"`
	Values          []string             `json:"values" validate:"omitempty,dive,required"`
	PersonalStories []PersonalStoryInput `json:"personal_stories" validate:"omitempty,dive"`
}

type UpdatePersonaRequest struct {
	Name            string               `json:"name" validate:"omitempty"`
	Country         string               `json:"country" validate:"omitempty"`
	Platform        string               `json:"platform" validate:"omitempty"`
	Values          []string             `json:"values" validate:"omitempty,dive,required"`
	PersonalStories []PersonalStoryInput `json:"personal_stories" validate:"omitempty,dive"`
}

type PersonalStoryInput struct {
	Title     string `json:"title" validate:"required"`
	Text      string `json:"text" validate:"required"`
	KeyLesson string `json:"key_lesson" validate:"omitempty"`
}

type PersonaResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Country         string                `json:"country"`
	Platform        string                `json:"platform"`
	Values          []string              `json:"values"`
	PersonalStories []model.PersonalStory `json:"personal_stories"`
}

type PersonaListResponse struct {
	Personas []model.PersonaSummary `json:"personas"`
}
