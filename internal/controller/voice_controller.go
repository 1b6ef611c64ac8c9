package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"pageant-coach-be/internal/dto"
	"pageant-coach-be/internal/pkg/serverutils"
	"pageant-coach-be/internal/service"
)

type IVoiceController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
	Synthesize(ctx *fiber.Ctx) error
}

type voiceController struct {
	service service.IVoiceService
}

func NewVoiceController(service service.IVoiceService) IVoiceController {
	return &voiceController{service: service}
}

func (c *voiceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/voice/v1")
	h.Post("/transcribe", c.Transcribe)
	h.Post("/synthesize", c.Synthesize)
}

// Transcribe accepts a multipart upload under field "audio" and returns
// the transcript.
func (c *voiceController) Transcribe(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing 'audio' file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded audio")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded audio")
	}

	res, err := c.service.Transcribe(ctx.Context(), audio, fileHeader.Filename)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}

// Synthesize returns raw WAV bytes, not the JSON envelope.
func (c *voiceController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.SynthesizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	audio, err := c.service.Synthesize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "audio/wav")
	return ctx.Send(audio)
}
