package controller

import (
	"project-finder-be/internal/dto"
	"project-finder-be/internal/pkg/serverutils"
	"project-finder-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIngestionController interface {
	RegisterRoutes(r fiber.Router)
	Refresh(ctx *fiber.Ctx) error
}

type ingestionController struct {
	ingestionService service.IIngestionService
}

func NewIngestionController(ingestionService service.IIngestionService) IIngestionController {
	return &ingestionController{
		ingestionService: ingestionService,
	}
}

func (c *ingestionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ingestion/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Post("refresh", c.Refresh)
}

func (c *ingestionController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}

	res, err := c.ingestionService.Refresh(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refresh posts", res))
}
