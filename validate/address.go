package validate

import (
	"cardapio_digital/model"

	"github.com/gofiber/fiber/v2"
)

func SaveAddress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SaveAddressInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("SaveAddress", input)
		return c.Next()
	}
}
