package controller

import (
	"math-agent-be/internal/dto"
	"math-agent-be/internal/pkg/serverutils"
	"math-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Post("", c.Add)
	h.Get("search", c.Search)
}

func (c *knowledgeController) Add(ctx *fiber.Ctx) error {
	var req dto.AddKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.knowledgeService.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add knowledge entry", res))
}

func (c *knowledgeController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return serverutils.NewAppError(fiber.StatusBadRequest, "query parameter 'q' is required")
	}
	limit := ctx.QueryInt("limit", 5)

	res, err := c.knowledgeService.Search(ctx.Context(), query, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search knowledge base", res))
}
