package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// generateOrderCode gera o código público do pedido (PED-XXXXXX)
func generateOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "PED-" + suffix
}

// lookupDeliveryFee busca a taxa pelo bairro com igualdade exata sem
// caixa. Bairro sem zona cadastrada significa que não entregamos lá.
func lookupDeliveryFee(db *gorm.DB, businessId uint, neighborhood string) (float64, error) {
	var zone model.DeliveryZone
	err := db.Where("business_id = ? AND LOWER(neighborhood_name) = LOWER(?)", businessId, strings.TrimSpace(neighborhood)).
		First(&zone).Error
	if err != nil {
		return 0, err
	}
	return zone.Fee, nil
}

// parseChangeFor valida o "troco para quanto" do pagamento em dinheiro:
// precisa ser numérico e cobrir o total final
func parseChangeFor(raw string, total float64) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, errors.New("Informe um valor numérico para o troco")
	}
	if value < total {
		return 0, fmt.Errorf("Valor insuficiente. O total do pedido é R$ %.2f", total)
	}
	return value, nil
}

// buildOrderNotes anexa a anotação de troco às observações do cliente
func buildOrderNotes(notes string, changeFor *float64, total float64) string {
	if changeFor == nil {
		return notes
	}
	change := *changeFor - total
	if change < 0 {
		return notes
	}
	annotation := fmt.Sprintf("Troco para R$ %.2f (troco: R$ %.2f)", *changeFor, change)
	if notes == "" {
		return annotation
	}
	return notes + " | " + annotation
}

// Checkout transforma o carrinho da sessão num pedido persistido e
// decide o caminho de conclusão: na entrega (dinheiro/débito) ou
// etapa de pagamento online (pix/crédito)
func Checkout(c *fiber.Ctx) error {
	input, ok := c.Locals("Checkout").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	slug := c.Params("slug")

	var business model.Business
	if err := db.Where("slug = ?", slug).First(&business).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}
	if !business.IsOpen {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BUSINESS_CLOSED, nil)
	}

	// Cópia fechada do carrinho: o pedido é montado sobre ela mesmo
	// que outra aba da sessão continue mexendo nas linhas
	cartLines, subtotal := helper.Carts.Get(input.SessionId).Snapshot()
	if len(cartLines) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Carrinho vazio", nil)
	}
	if business.MinOrderValue > 0 && subtotal < business.MinOrderValue {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Pedido mínimo de R$ %.2f", business.MinOrderValue), nil)
	}

	// Taxa de entrega: só para delivery, e o bairro precisa ter zona
	deliveryFee := 0.0
	deliveryAddress := constants.PICKUP_ADDRESS_LABEL
	if input.OrderType == constants.OrderTypeDelivery {
		fee, err := lookupDeliveryFee(db, business.ID, input.Neighborhood)
		if err != nil {
			return utils.FieldErrorResponse(c, constants.NEIGHBORHOOD_NOT_SERVED, "neighborhood")
		}
		deliveryFee = fee
		deliveryAddress = input.Address
	}

	total := subtotal + deliveryFee
	method := constants.NormalizePaymentMethod(input.PaymentMethod)

	var changeFor *float64
	if method == constants.PaymentMethodCash && input.ChangeFor != nil && *input.ChangeFor != "" {
		value, err := parseChangeFor(*input.ChangeFor, total)
		if err != nil {
			return utils.FieldErrorResponse(c, err.Error(), "changeFor")
		}
		changeFor = utils.Ptr(value)
	}

	warnings := []string{}

	// 1. Perfil do cliente para reconhecê-lo na próxima visita
	profile := model.CustomerProfile{BusinessId: business.ID, Phone: input.CustomerPhone}
	if err := db.Where(model.CustomerProfile{BusinessId: business.ID, Phone: input.CustomerPhone}).
		Assign(map[string]interface{}{"name": input.CustomerName, "email": input.CustomerEmail}).
		FirstOrCreate(&profile).Error; err != nil {
		log.Printf("Erro ao salvar perfil do cliente %s: %v", input.CustomerPhone, err)
	}

	// 2. Endereço salvo é melhor esforço: falha não bloqueia o pedido
	if input.SaveAddress && input.OrderType == constants.OrderTypeDelivery {
		if err := saveCustomerAddress(db, business.Slug, input); err != nil {
			log.Printf("Erro ao salvar endereço de %s: %v", input.CustomerPhone, err)
			warnings = append(warnings, "Não foi possível salvar o endereço para próximas compras")
		}
	}

	// 3. Snapshot congelado do carrinho: o pedido não referencia produtos vivos
	var items []model.OrderItem
	copier.Copy(&items, &cartLines)
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ORDER_CREATE_FAILED, err, "paymentMethod")
	}

	order := model.Order{
		PublicCode:      generateOrderCode(),
		BusinessId:      business.ID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		Items:           itemsJSON,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           total,
		OrderType:       input.OrderType,
		DeliveryAddress: deliveryAddress,
		Neighborhood:    input.Neighborhood,
		PaymentMethod:   method,
		Status:          constants.OrderStatusPendingPayment,
		PaymentStatus:   constants.PaymentStatusPending,
		ChangeFor:       changeFor,
		Notes:           buildOrderNotes(input.Notes, changeFor, total),
	}

	if err := db.Create(&order).Error; err != nil {
		// keyError força o cliente a reconfirmar a forma de pagamento
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ORDER_CREATE_FAILED, err, "paymentMethod")
	}

	helper.Carts.Clear(input.SessionId)

	// Dinheiro e débito não passam pela etapa de pagamento: o pedido
	// entra direto na esteira da cozinha como pago na entrega
	if !constants.PaymentRequiresGateway(method) {
		initialStatus := constants.OrderStatusReceived
		if business.AutoApproveOrders {
			initialStatus = constants.OrderStatusApproved
		}
		if err := db.Model(&order).Updates(map[string]interface{}{
			"status":         initialStatus,
			"payment_status": constants.PaymentStatusPaidOnDelivery,
		}).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ORDER_CREATE_FAILED, err, "paymentMethod")
		}
		order.Status = initialStatus
		order.PaymentStatus = constants.PaymentStatusPaidOnDelivery

		PublishOrder(&order)
		notifyOrderConfirmed(&business, &order)

		return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
			"order":    order,
			"nextStep": "done",
			"warnings": warnings,
		})
	}

	// Pix e crédito seguem pendentes até a confirmação do gateway
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"order":    order,
		"nextStep": "payment",
		"warnings": warnings,
	})
}

// saveCustomerAddress insere o endereço se o par (endereço, bairro)
// ainda não existir para o telefone neste estabelecimento
func saveCustomerAddress(db *gorm.DB, businessSlug string, input model.CheckoutInput) error {
	var count int64
	db.Model(&model.CustomerAddress{}).
		Where("customer_phone = ? AND business_slug = ? AND address = ? AND neighborhood = ?",
			input.CustomerPhone, businessSlug, input.Address, input.Neighborhood).
		Count(&count)
	if count > 0 {
		return nil
	}

	address := model.CustomerAddress{
		CustomerPhone: input.CustomerPhone,
		BusinessSlug:  businessSlug,
		Address:       input.Address,
		Neighborhood:  input.Neighborhood,
		AddressLabel:  constants.DEFAULT_ADDRESS_LABEL,
	}
	return db.Create(&address).Error
}

// notifyOrderConfirmed dispara o e-mail de confirmação quando o
// cliente informou e-mail (async, melhor esforço)
func notifyOrderConfirmed(business *model.Business, order *model.Order) {
	if order.CustomerEmail == "" {
		return
	}

	items, err := order.ItemsSnapshot()
	if err != nil {
		log.Printf("Erro ao ler itens do pedido %s: %v", order.PublicCode, err)
		return
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
	}

	utils.SendOrderConfirmationEmail(order.CustomerEmail, utils.OrderConfirmationData{
		OrderCode:     order.PublicCode,
		BusinessName:  business.Name,
		Items:         strings.Join(lines, ", "),
		OrderType:     order.OrderType,
		Address:       order.DeliveryAddress,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
	})
}
