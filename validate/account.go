package validate

import (
	"cardapio_digital/model"

	"github.com/gofiber/fiber/v2"
)

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordRequest
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("EmailForgotPassword", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordRequest
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("ResetPassword", input)
		return c.Next()
	}
}
