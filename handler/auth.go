package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/helper"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	user, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to load users")
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, "Invalid username or password")
	}

	token, err := helper.GenerateToken(*user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, "Failed to generate token")
	}
	return c.JSON(fiber.Map{"token": token})
}

// Me returns the claims of the calling token, mostly for the frontend.
func Me(c *fiber.Ctx) error {
	claim := helper.GetUserFromToken(c)
	return c.JSON(fiber.Map{
		"id":       claim.UserID,
		"username": claim.Username,
		"role":     claim.Role,
	})
}
