package validate

import (
	"cardapio_digital/constants"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"

	"github.com/gofiber/fiber/v2"
)

var knownOrderStatuses = map[string]bool{
	constants.OrderStatusPendingPayment: true,
	constants.OrderStatusReceived:       true,
	constants.OrderStatusApproved:       true,
	constants.OrderStatusPreparing:      true,
	constants.OrderStatusReady:          true,
	constants.OrderStatusCompleted:      true,
	constants.OrderStatusCancelled:      true,
}

func AdvanceOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdvanceOrderInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		if _, err := helper.RequireBusinessId(c); err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
		}

		if !knownOrderStatuses[input.TargetStatus] {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Status desconhecido", nil, "targetStatus")
		}

		c.Locals("AdvanceOrder", input)
		return c.Next()
	}
}
