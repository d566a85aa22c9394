package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/meinhoongagan/edumate/utils"
)

// VerifiedEmail requires a verification ticket in the Authorization header
// whose email claim matches the email in the request body. When disabled it
// lets every request through.
func VerifiedEmail(enabled bool, secret []byte) fiber.Handler {
	if !enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   secret,
		ErrorHandler: ticketError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unverified(c, "Invalid verification ticket")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unverified(c, "Invalid verification ticket")
			}
			email, err := utils.TicketEmail(claims)
			if err != nil {
				return unverified(c, "Invalid verification ticket")
			}

			var body struct {
				Email string `json:"email"`
			}
			if err := c.BodyParser(&body); err != nil || body.Email != email {
				return unverified(c, "Email not verified")
			}
			return c.Next()
		},
	})
}

func unverified(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: message})
}

func ticketError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
		Message: "Email not verified",
		Error:   err.Error(),
	})
}
