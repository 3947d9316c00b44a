package validate

import (
	"cardapio_digital/constants"
	"cardapio_digital/model"
	"cardapio_digital/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		method := constants.NormalizePaymentMethod(input.Method)
		if !constants.PaymentRequiresGateway(method) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Essa forma de pagamento é acertada na entrega", nil, "method")
		}

		c.Locals("CreatePayment", input)
		return c.Next()
	}
}

func ConfirmPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConfirmPaymentInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("ConfirmPayment", input)
		return c.Next()
	}
}
