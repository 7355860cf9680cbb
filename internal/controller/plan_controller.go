package controller

import (
	"project-finder-be/internal/dto"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/internal/pkg/serverutils"
	"project-finder-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Iterate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) IPlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plan/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Post("", c.Generate)
	h.Get(":id", c.Show)
	h.Post(":id/iterate", c.Iterate)
}

func (c *planController) Generate(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.GeneratePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.planService.Generate(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate plan", res))
}

func (c *planController) Iterate(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	planId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.Validation("plan id %q is not a valid uuid", ctx.Params("id"))
	}

	var req dto.IteratePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.planService.Iterate(ctx.Context(), sessionId, planId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success iterate plan", res))
}

func (c *planController) Show(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	planId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.Validation("plan id %q is not a valid uuid", ctx.Params("id"))
	}

	res, err := c.planService.Show(ctx.Context(), sessionId, planId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show plan", res))
}
