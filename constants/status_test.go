package constants

import "testing"

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    bool
	}{
		{"pagamento confirmado entra na esteira", OrderStatusPendingPayment, OrderStatusReceived, true},
		{"recebido para aprovado", OrderStatusReceived, OrderStatusApproved, true},
		{"aprovado para em preparo", OrderStatusApproved, OrderStatusPreparing, true},
		{"em preparo para pronto", OrderStatusPreparing, OrderStatusReady, true},
		{"pronto para concluído", OrderStatusReady, OrderStatusCompleted, true},
		{"não pula etapas", OrderStatusReceived, OrderStatusReady, false},
		{"não volta", OrderStatusPreparing, OrderStatusApproved, false},
		{"concluído é terminal", OrderStatusCompleted, OrderStatusReceived, false},
		{"cancelado é terminal", OrderStatusCancelled, OrderStatusReceived, false},
		{"cancelar não é avanço", OrderStatusReceived, OrderStatusCancelled, false},
		{"status desconhecido", "whatever", OrderStatusReceived, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdvance(tt.current, tt.target); got != tt.want {
				t.Errorf("CanAdvance(%q, %q) = %v, want %v", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestPipelineChainTerminatesInCompleted(t *testing.T) {
	status := OrderStatusPendingPayment
	steps := 0
	for {
		next, ok := NextOrderStatus(status)
		if !ok {
			break
		}
		// prev deve devolver exatamente o status de onde viemos
		prev, ok := PrevOrderStatus(next)
		if !ok || prev != status {
			t.Fatalf("PrevOrderStatus(%q) = %q, want %q", next, prev, status)
		}
		status = next
		steps++
		if steps > 10 {
			t.Fatal("pipeline com ciclo")
		}
	}
	if status != OrderStatusCompleted {
		t.Errorf("pipeline termina em %q, want %q", status, OrderStatusCompleted)
	}
}

func TestCanCancel(t *testing.T) {
	cancellable := []string{
		OrderStatusPendingPayment,
		OrderStatusReceived,
		OrderStatusApproved,
		OrderStatusPreparing,
		OrderStatusReady,
	}
	for _, s := range cancellable {
		if !CanCancel(s) {
			t.Errorf("CanCancel(%q) = false, want true", s)
		}
	}
	for _, s := range []string{OrderStatusCompleted, OrderStatusCancelled} {
		if CanCancel(s) {
			t.Errorf("CanCancel(%q) = true, want false", s)
		}
	}
}

func TestKitchenBoardExcludesPendingPayment(t *testing.T) {
	for _, s := range KitchenBoardStatuses() {
		if s == OrderStatusPendingPayment {
			t.Fatal("painel da cozinha não deve listar pedidos aguardando pagamento")
		}
		if s == OrderStatusCompleted || s == OrderStatusCancelled {
			t.Fatalf("painel da cozinha não deve listar status terminal %q", s)
		}
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Pix", PaymentMethodPix},
		{"pix", PaymentMethodPix},
		{"Dinheiro", PaymentMethodCash},
		{"  dinheiro  ", PaymentMethodCash},
		{"Cartão de Crédito", PaymentMethodCreditCard},
		{"cartao de credito", PaymentMethodCreditCard},
		{"Cartão de Débito", PaymentMethodDebitCard},
		{"vale-refeição", PaymentMethodOther},
		{"", PaymentMethodOther},
	}

	for _, tt := range tests {
		if got := NormalizePaymentMethod(tt.label); got != tt.want {
			t.Errorf("NormalizePaymentMethod(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestPaymentRequiresGateway(t *testing.T) {
	online := map[string]bool{
		PaymentMethodPix:        true,
		PaymentMethodCreditCard: true,
		PaymentMethodDebitCard:  false,
		PaymentMethodCash:       false,
		PaymentMethodOther:      false,
	}
	for method, want := range online {
		if got := PaymentRequiresGateway(method); got != want {
			t.Errorf("PaymentRequiresGateway(%q) = %v, want %v", method, got, want)
		}
	}
}
