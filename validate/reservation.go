package validate

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

// local-part@domain with at least one dot in the domain
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Reserve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReserveInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Invalid request body")
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Screening ID and email are required")
		}
		if !emailShape.MatchString(input.Email) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Invalid email format")
		}
		c.Locals("input", input)
		return c.Next()
	}
}
