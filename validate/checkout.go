package validate

import (
	"cardapio_digital/constants"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Checkout valida os dados do cliente antes do handler montar o pedido.
// Erros de campo voltam como {error, field} para o front destacar o input.
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		input.CustomerName = strings.TrimSpace(input.CustomerName)
		input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)

		if input.CustomerName == "" {
			return utils.FieldErrorResponse(c, "Informe o seu nome", "customerName")
		}
		if len(onlyDigits(input.CustomerPhone)) < 10 {
			return utils.FieldErrorResponse(c, "Telefone inválido", "customerPhone")
		}

		if input.OrderType != constants.OrderTypeDelivery && input.OrderType != constants.OrderTypePickup {
			return utils.FieldErrorResponse(c, "Tipo de pedido inválido", "orderType")
		}

		// endereço só é exigido na entrega
		if input.OrderType == constants.OrderTypeDelivery {
			if strings.TrimSpace(input.Address) == "" {
				return utils.FieldErrorResponse(c, "Informe o endereço de entrega", "address")
			}
			if strings.TrimSpace(input.Neighborhood) == "" {
				return utils.FieldErrorResponse(c, "Informe o bairro", "neighborhood")
			}
		}

		if strings.TrimSpace(input.PaymentMethod) == "" {
			return utils.FieldErrorResponse(c, "Escolha a forma de pagamento", "paymentMethod")
		}

		c.Locals("Checkout", input)
		return c.Next()
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
