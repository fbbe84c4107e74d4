package handler

import (
	"go-challan-book/internal/model"
	"go-challan-book/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChallanHandler struct {
	service service.ChallanService
}

func NewChallanHandler(s service.ChallanService) *ChallanHandler {
	return &ChallanHandler{service: s}
}

// GetChallans returns all challans, newest challan number first
func (h *ChallanHandler) GetChallans(c *fiber.Ctx) error {
	challans, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err, "Failed to fetch challans")
	}
	return c.JSON(model.ChallansToResponses(challans))
}

func (h *ChallanHandler) GetChallan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challan ID"})
	}

	challan, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch challan")
	}
	return c.JSON(challan.ToResponse())
}

func (h *ChallanHandler) CreateChallan(c *fiber.Ctx) error {
	var req service.ChallanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	challan, err := h.service.Create(&req, getUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to add challan")
	}

	return c.Status(201).JSON(fiber.Map{"message": "Challan created", "data": challan.ToResponse()})
}

func (h *ChallanHandler) UpdateChallan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challan ID"})
	}

	var req service.ChallanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	challan, err := h.service.Update(id, &req, getUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to update challan")
	}

	return c.JSON(fiber.Map{"message": "Challan updated", "data": challan.ToResponse()})
}

func (h *ChallanHandler) DeleteChallan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challan ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err, "Failed to delete challan")
	}

	return c.JSON(fiber.Map{"message": "Challan deleted", "id": id})
}
