package validate

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

func CreateScreening() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScreeningInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Invalid request body")
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Movie title, date, and tickets available are required")
		}
		if _, err := time.Parse(time.RFC3339, input.Date); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Date must be an ISO 8601 timestamp")
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func EditScreening() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateScreeningInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Invalid request body")
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Invalid ticketsAvailable value for update")
		}
		if input.Date != "" {
			if _, err := time.Parse(time.RFC3339, input.Date); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Date must be an ISO 8601 timestamp")
			}
		}
		c.Locals("input", input)
		return c.Next()
	}
}
