package controller

import (
	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/pkg/serverutils"
	"style-weaver-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWardrobeController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type wardrobeController struct {
	service service.IWardrobeService
}

func NewWardrobeController(service service.IWardrobeService) IWardrobeController {
	return &wardrobeController{service: service}
}

func (c *wardrobeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wardrobe/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
}

func (c *wardrobeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateWardrobeItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create wardrobe item", res))
}

func (c *wardrobeController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext(), ctx.Query("category"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all wardrobe items", res))
}
