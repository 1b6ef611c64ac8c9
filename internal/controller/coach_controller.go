package controller

import (
	"github.com/gofiber/fiber/v2"

	"pageant-coach-be/internal/dto"
	"pageant-coach-be/internal/pkg/serverutils"
	"pageant-coach-be/internal/service"
)

type ICoachController interface {
	RegisterRoutes(r fiber.Router)
	Refine(ctx *fiber.Ctx) error
}

type coachController struct {
	service service.ICoachService
}

func NewCoachController(service service.ICoachService) ICoachController {
	return &coachController{service: service}
}

func (c *coachController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/coach/v1")
	h.Post("/refine", c.Refine)
}

func (c *coachController) Refine(ctx *fiber.Ctx) error {
	var req dto.RefineAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Refine(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refine answer", res))
}
