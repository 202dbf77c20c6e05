package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes the structured failure payload: code is the
// machine-checkable kind from constants, message is for humans.
func ErrorResponse(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}
