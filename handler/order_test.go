package handler

import (
	"cardapio_digital/constants"
	"cardapio_digital/model"
	"errors"
	"testing"
)

func pendingOrder(businessId uint, autoApprove bool) *model.Order {
	return &model.Order{
		PublicCode: "PED-ABC123",
		BusinessId: businessId,
		Status:     constants.OrderStatusPendingPayment,
		Business:   &model.Business{AutoApproveOrders: autoApprove},
	}
}

func TestResolvePaymentApproval(t *testing.T) {
	tests := []struct {
		name       string
		order      *model.Order
		businessId uint
		wantTarget string
		wantErr    error
	}{
		{
			name:       "pendente vai para recebido",
			order:      pendingOrder(1, false),
			businessId: 1,
			wantTarget: constants.OrderStatusReceived,
		},
		{
			name:       "aprovação automática pula direto para aprovado",
			order:      pendingOrder(1, true),
			businessId: 1,
			wantTarget: constants.OrderStatusApproved,
		},
		{
			name:       "pedido de outro estabelecimento é rejeitado",
			order:      pendingOrder(2, false),
			businessId: 1,
			wantErr:    errOrderWrongBusiness,
		},
		{
			name: "confirmação após cancelamento não tem efeito",
			order: &model.Order{
				BusinessId: 1,
				Status:     constants.OrderStatusCancelled,
				Business:   &model.Business{},
			},
			businessId: 1,
			wantTarget: "",
		},
		{
			name: "pedido já na esteira não volta",
			order: &model.Order{
				BusinessId: 1,
				Status:     constants.OrderStatusPreparing,
				Business:   &model.Business{},
			},
			businessId: 1,
			wantTarget: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := resolvePaymentApproval(tt.order, tt.businessId)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if target != tt.wantTarget {
				t.Errorf("target = %q, want %q", target, tt.wantTarget)
			}
		})
	}
}

// A reentrega do webhook e a confirmação disparada pelo cliente podem
// chegar com o mesmo resultado aprovado: a segunda resolução precisa
// ser um no-op, nunca um reprocessamento.
func TestResolvePaymentApprovalIsIdempotent(t *testing.T) {
	order := pendingOrder(1, false)

	target, err := resolvePaymentApproval(order, 1)
	if err != nil || target != constants.OrderStatusReceived {
		t.Fatalf("primeira confirmação: target=%q err=%v", target, err)
	}

	// o pedido já avançou; a mesma notificação chega de novo
	order.Status = target
	again, err := resolvePaymentApproval(order, 1)
	if err != nil {
		t.Fatalf("reentrega não deveria errar: %v", err)
	}
	if again != "" {
		t.Errorf("reentrega produziu novo destino %q, deveria ser no-op", again)
	}
}
