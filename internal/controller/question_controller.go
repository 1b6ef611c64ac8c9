package controller

import (
	"github.com/gofiber/fiber/v2"

	"pageant-coach-be/internal/dto"
	"pageant-coach-be/internal/pkg/serverutils"
	"pageant-coach-be/internal/service"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	Random(ctx *fiber.Ctx) error
	Options(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
}

func NewQuestionController(service service.IQuestionService) IQuestionController {
	return &questionController{service: service}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/question/v1")
	h.Get("/random", c.Random)
	h.Get("/options", c.Options)
}

func (c *questionController) Random(ctx *fiber.Ctx) error {
	req := dto.RandomQuestionRequest{
		SessionID:    ctx.Query("session_id"),
		QuestionType: ctx.Query("question_type"),
		Difficulty:   ctx.Query("difficulty"),
		Pageant:      ctx.Query("pageant_type"),
	}

	res, err := c.service.Random(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get random question", res))
}

func (c *questionController) Options(ctx *fiber.Ctx) error {
	res := c.service.Options(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get question options", res))
}
