package controller

import (
	"strings"

	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/pkg/serverutils"
	"style-weaver-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStyleController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Weave(ctx *fiber.Ctx) error
	ListTrends(ctx *fiber.Ctx) error
}

type styleController struct {
	service service.IStyleService
}

func NewStyleController(service service.IStyleService) IStyleController {
	return &styleController{service: service}
}

func (c *styleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/style/v1")
	h.Post("generate", c.Generate)
	h.Post("weave", c.Weave)
	h.Get("trends", c.ListTrends)
}

func (c *styleController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateStyleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.UserContext(), req.TrendName)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Successfully generated style board for "+res.Trend, res))
}

// Weave is the legacy endpoint; it accepts the trend as either trend_name or trend.
func (c *styleController) Weave(ctx *fiber.Ctx) error {
	var req dto.WeaveStyleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if strings.TrimSpace(req.Name()) == "" {
		return serverutils.BadRequest("Missing trend_name or trend in request body", nil)
	}

	res, err := c.service.Generate(ctx.UserContext(), req.Name())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Style generated successfully", res))
}

func (c *styleController) ListTrends(ctx *fiber.Ctx) error {
	res, err := c.service.ListTrends(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get trends", res))
}
