package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/helper"
	"github.com/steellight541/cinema-app/utils"
)

// Protected requires a valid bearer token (Authorization header or
// access_token cookie) and stashes the parsed token in Locals.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, "Unauthorized: No token provided")
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, "Unauthorized: Invalid token")
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// ManagerOnly gates screening mutations behind the manager role.
// It must run after Protected.
func ManagerOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := helper.GetUserFromToken(c)
		if claim.Role != constants.ROLE_MANAGER {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ERROR_FORBIDDEN, "Forbidden: Access denied")
		}
		return c.Next()
	}
}
