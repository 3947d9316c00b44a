package constants

import "strings"

// Status do pedido (pipeline da cozinha)
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusReceived       = "received"
	OrderStatusApproved       = "approved"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

// Status de pagamento (independente do status do pedido)
const (
	PaymentStatusPending        = "pending"
	PaymentStatusPaidOnDelivery = "paid_on_delivery"
	PaymentStatusPaid           = "paid"
	PaymentStatusFailed         = "failed"
)

// Formas de pagamento normalizadas
const (
	PaymentMethodPix        = "pix"
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodCash       = "cash"
	PaymentMethodOther      = "other"
)

// Tipo de pedido
const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// Tabela única de transições do pipeline. advance e cancel consultam
// aqui em vez de duplicar a adjacência em cada handler.
var orderStatusNext = map[string]string{
	OrderStatusPendingPayment: OrderStatusReceived,
	OrderStatusReceived:       OrderStatusApproved,
	OrderStatusApproved:       OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusReady,
	OrderStatusReady:          OrderStatusCompleted,
}

var orderStatusPrev = map[string]string{
	OrderStatusReceived:  OrderStatusPendingPayment,
	OrderStatusApproved:  OrderStatusReceived,
	OrderStatusPreparing: OrderStatusApproved,
	OrderStatusReady:     OrderStatusPreparing,
	OrderStatusCompleted: OrderStatusReady,
}

// NextOrderStatus retorna o sucessor do status atual no pipeline
func NextOrderStatus(current string) (string, bool) {
	next, ok := orderStatusNext[current]
	return next, ok
}

// PrevOrderStatus retorna o antecessor (apenas para exibição/desfazer)
func PrevOrderStatus(current string) (string, bool) {
	prev, ok := orderStatusPrev[current]
	return prev, ok
}

// CanAdvance aceita apenas o sucessor declarado do status atual
func CanAdvance(current, target string) bool {
	next, ok := orderStatusNext[current]
	return ok && next == target
}

func IsTerminalOrderStatus(status string) bool {
	return status == OrderStatusCompleted || status == OrderStatusCancelled
}

// CanCancel permite cancelar a partir de qualquer status não terminal
func CanCancel(status string) bool {
	return !IsTerminalOrderStatus(status)
}

// KitchenBoardStatuses são as colunas visíveis no painel da cozinha.
// pending_payment fica de fora até a confirmação do pagamento.
func KitchenBoardStatuses() []string {
	return []string{
		OrderStatusReceived,
		OrderStatusApproved,
		OrderStatusPreparing,
		OrderStatusReady,
	}
}

var paymentMethodLabels = map[string]string{
	"pix":               PaymentMethodPix,
	"dinheiro":          PaymentMethodCash,
	"cash":              PaymentMethodCash,
	"cartão de crédito": PaymentMethodCreditCard,
	"cartao de credito": PaymentMethodCreditCard,
	"crédito":           PaymentMethodCreditCard,
	"credito":           PaymentMethodCreditCard,
	"credit_card":       PaymentMethodCreditCard,
	"cartão de débito":  PaymentMethodDebitCard,
	"cartao de debito":  PaymentMethodDebitCard,
	"débito":            PaymentMethodDebitCard,
	"debito":            PaymentMethodDebitCard,
	"debit_card":        PaymentMethodDebitCard,
}

// NormalizePaymentMethod converte o rótulo exibido ao cliente
// ("Dinheiro", "Pix", "Cartão de Crédito"...) no código interno
func NormalizePaymentMethod(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if code, ok := paymentMethodLabels[key]; ok {
		return code
	}
	return PaymentMethodOther
}

// PaymentRequiresGateway indica as formas que passam pela etapa de
// pagamento online. Dinheiro e débito são acertados na entrega.
func PaymentRequiresGateway(method string) bool {
	return method == PaymentMethodPix || method == PaymentMethodCreditCard
}
