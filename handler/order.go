package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/helper"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetOrderByCode é a tela pública de acompanhamento do pedido
func GetOrderByCode(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Business").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	items, err := order.ItemsSnapshot()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	businessName := ""
	if order.Business != nil {
		businessName = order.Business.Name
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode":       order.PublicCode,
		"business":        businessName,
		"customerName":    order.CustomerName,
		"items":           items,
		"subtotal":        order.Subtotal,
		"deliveryFee":     order.DeliveryFee,
		"total":           order.Total,
		"orderType":       order.OrderType,
		"deliveryAddress": order.DeliveryAddress,
		"paymentMethod":   order.PaymentMethod,
		"status":          order.Status,
		"paymentStatus":   order.PaymentStatus,
		"notes":           order.Notes,
		"createdAt":       order.CreatedAt,
	})
}

// GetOrdersByPhone lista o histórico do cliente neste estabelecimento
func GetOrdersByPhone(c *fiber.Ctx) error {
	slug := c.Params("slug")
	phone := c.Query("phone")
	if phone == "" {
		return utils.FieldErrorResponse(c, "Informe o telefone", "phone")
	}

	var business model.Business
	if err := database.DB.Where("slug = ?", slug).First(&business).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BUSINESS_NOT_FOUND, err)
	}

	pagination := model.Pagination{
		Limit: utils.Ptr(c.QueryInt("limit", 30)),
		Page:  utils.Ptr(c.QueryInt("page", 1)),
	}

	var total int64
	if err := database.DB.Model(&model.Order{}).
		Where("business_id = ? AND customer_phone = ?", business.ID, phone).
		Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar pedidos", err)
	}

	query := database.DB.
		Where("business_id = ? AND customer_phone = ?", business.ID, phone).
		Order("created_at desc")

	var orders []model.Order
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar pedidos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	})
}

// GetKitchenBoard agrupa os pedidos ativos por coluna da esteira.
// pending_payment nunca aparece aqui.
func GetKitchenBoard(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	var orders []model.Order
	if err := database.DB.
		Where("business_id = ? AND status IN ?", businessId, constants.KitchenBoardStatuses()).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar o painel", err)
	}

	board := make(map[string][]model.Order)
	for _, status := range constants.KitchenBoardStatuses() {
		board[status] = []model.Order{}
	}
	for _, order := range orders {
		board[order.Status] = append(board[order.Status], order)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, board)
}

// AdvanceOrder move o pedido para o próximo estágio da esteira.
// Só o sucessor declarado é aceito — protege contra painel defasado.
func AdvanceOrder(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	orderCode := c.Params("orderCode")
	input, ok := c.Locals("AdvanceOrder").(model.AdvanceOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var order model.Order
	if err := database.DB.
		Where("public_code = ? AND business_id = ?", orderCode, businessId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if !constants.CanAdvance(order.Status, input.TargetStatus) {
		next, _ := constants.NextOrderStatus(order.Status)
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Transição inválida: %s → %s (esperado: %s)", order.Status, input.TargetStatus, next), nil)
	}

	updates := map[string]interface{}{"status": input.TargetStatus}
	// Avanço manual para received também fecha o ciclo de pagamento
	// pendente (ex.: cliente pagou por fora e a loja confirmou)
	if order.Status == constants.OrderStatusPendingPayment {
		updates["payment_status"] = constants.PaymentStatusPaid
		updates["paid_at"] = time.Now()
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o pedido", err)
	}
	order.Status = input.TargetStatus

	PublishOrder(&order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CancelOrder cancela de qualquer status não terminal; cancelamento é
// status, nunca remoção da linha
func CancelOrder(c *fiber.Ctx) error {
	businessId, err := helper.RequireBusinessId(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_BUSINESS_ACCOUNT, err)
	}

	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Where("public_code = ? AND business_id = ?", orderCode, businessId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if !constants.CanCancel(order.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Pedido já finalizado, não pode ser cancelado", nil)
	}

	now := time.Now()
	if err := database.DB.Model(&order).Updates(map[string]interface{}{
		"status":       constants.OrderStatusCancelled,
		"cancelled_at": now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível cancelar o pedido", err)
	}
	order.Status = constants.OrderStatusCancelled
	order.CancelledAt = &now

	PublishOrder(&order)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Pedido cancelado",
		"order":   order,
	})
}

var errOrderWrongBusiness = errors.New("pedido pertence a outro estabelecimento")

// resolvePaymentApproval decide o efeito de uma confirmação de
// pagamento aprovada. target vazio significa nada a aplicar:
// reentrega do webhook, confirmação dupla ou pedido já cancelado.
// A referência externa vem do gateway e não é confiável entre
// lojistas, então o pedido precisa pertencer ao estabelecimento
// que assinou a notificação.
func resolvePaymentApproval(order *model.Order, businessId uint) (string, error) {
	if order.BusinessId != businessId {
		return "", errOrderWrongBusiness
	}
	if order.Status != constants.OrderStatusPendingPayment {
		return "", nil
	}
	if order.Business != nil && order.Business.AutoApproveOrders {
		return constants.OrderStatusApproved, nil
	}
	return constants.OrderStatusReceived, nil
}

// applyPaymentApproved aplica a confirmação de pagamento de forma
// idempotente: o UPDATE só pega o pedido ainda em pending_payment,
// então webhook e confirmação do cliente podem correr em paralelo
func applyPaymentApproved(db *gorm.DB, businessId uint, orderCode string) (*model.Order, error) {
	var order model.Order
	if err := db.Preload("Business").Where("public_code = ?", orderCode).First(&order).Error; err != nil {
		return nil, err
	}

	targetStatus, err := resolvePaymentApproval(&order, businessId)
	if err != nil {
		return nil, err
	}
	if targetStatus == "" {
		return &order, nil // já resolvido, reentrega não tem efeito
	}

	now := time.Now()
	result := db.Model(&model.Order{}).
		Where("public_code = ? AND business_id = ? AND status = ?", orderCode, businessId, constants.OrderStatusPendingPayment).
		Updates(map[string]interface{}{
			"status":         targetStatus,
			"payment_status": constants.PaymentStatusPaid,
			"paid_at":        now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected > 0 {
		order.Status = targetStatus
		order.PaymentStatus = constants.PaymentStatusPaid
		order.PaidAt = &now

		PublishOrder(&order)
		if order.Business != nil {
			notifyOrderConfirmed(order.Business, &order)
		}
	}

	return &order, nil
}
