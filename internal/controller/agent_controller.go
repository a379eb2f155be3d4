package controller

import (
	"math-agent-be/internal/dto"
	"math-agent-be/internal/pkg/serverutils"
	"math-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	ShowInteraction(ctx *fiber.Ctx) error
}

type agentController struct {
	questionService service.IQuestionService
}

func NewAgentController(questionService service.IQuestionService) IAgentController {
	return &agentController{
		questionService: questionService,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Post("ask", c.Ask)
	h.Get("interaction/:id", c.ShowInteraction)
}

func (c *agentController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.questionService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *agentController) ShowInteraction(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "invalid interaction id")
	}

	res, err := c.questionService.GetInteraction(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get interaction", res))
}
