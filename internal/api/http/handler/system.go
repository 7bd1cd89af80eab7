package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/sorriso_backend/pkg/constants"
)

// GET /
func Info(c fiber.Ctx) error {
	return ok(c, fiber.Map{
		"ok":      true,
		"service": constants.ServiceName,
		"message": "API online. Use /health para status.",
	})
}

// GET /health
func Health(c fiber.Ctx) error {
	return ok(c, fiber.Map{"ok": true, "service": constants.ServiceName})
}
