package validate

import (
	"github.com/gofiber/fiber/v2"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Invalid request body")
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_ARGUMENT, "Username and password are required")
		}
		c.Locals("input", input)
		return c.Next()
	}
}
