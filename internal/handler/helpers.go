package handler

import (
	"errors"
	"log"

	"go-challan-book/internal/repository"
	"go-challan-book/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// getUserID reads the authenticated user id set by the RequireAuth middleware
func getUserID(c *fiber.Ctx) uuid.UUID {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil // shouldn't happen behind RequireAuth
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// respondError translates service errors into status codes. Validation
// failures return every violated rule; store failures surface only a generic
// message, the cause goes to the log.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(400).JSON(fiber.Map{
			"error":   validationErr.Error(),
			"details": validationErr.Messages,
		})
	case errors.Is(err, repository.ErrVersionConflict):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrChallanNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrCompanyNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("store operation failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": fallback})
	}
}
