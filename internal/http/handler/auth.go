package handler

import (
	"github.com/gofiber/fiber/v2"

	"runbot/internal/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges admin credentials for a bearer token.
func Login(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		token, err := authSvc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(loginResponse{Token: token})
	}
}
