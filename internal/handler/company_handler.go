package handler

import (
	"go-challan-book/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	service service.CompanyService
}

func NewCompanyHandler(s service.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: s}
}

// GetCompany returns the caller's company profile
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.service.Get(getUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch company details")
	}
	return c.JSON(company)
}

// SaveCompany upserts the caller's company profile
func (h *CompanyHandler) SaveCompany(c *fiber.Ctx) error {
	var req service.CompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	company, err := h.service.Save(&req, getUserID(c))
	if err != nil {
		return respondError(c, err, "Failed to update company details")
	}

	return c.JSON(fiber.Map{"message": "Company details saved", "data": company})
}
