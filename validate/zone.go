package validate

import (
	"cardapio_digital/constants"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateDeliveryZone() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDeliveryZoneInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if _, err := helper.RequireBusinessId(c); err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		c.Locals("CreateDeliveryZone", input)
		return c.Next()
	}
}

func EditDeliveryZone(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditDeliveryZoneInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if _, err := helper.RequireBusinessId(c); err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		if input.Fee != nil && *input.Fee < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Taxa de entrega não pode ser negativa", nil, "fee")
		}

		c.Locals("EditDeliveryZone", input)
		return GetById(key)(c)
	}
}
