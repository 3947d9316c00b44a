package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestOrderItemSubtotal(t *testing.T) {
	tests := []struct {
		name string
		item OrderItem
		want float64
	}{
		{
			"sem adicionais",
			OrderItem{Name: "Coca-Cola 2L", Quantity: 2, UnitPrice: 12},
			24,
		},
		{
			"adicionais entram no preço unitário",
			OrderItem{
				Name: "Pizza Calabresa", Quantity: 2, UnitPrice: 45,
				Addons: []OrderItemAddon{{Name: "Borda", Quantity: 1, Price: 8}},
			},
			106, // (45 + 8) * 2
		},
		{
			"adicional com quantidade",
			OrderItem{
				Name: "Açaí 500ml", Quantity: 1, UnitPrice: 20,
				Addons: []OrderItemAddon{{Name: "Leite em pó", Quantity: 2, Price: 3}},
			},
			26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Subtotal(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Subtotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemsSnapshotEmptyOrder(t *testing.T) {
	var order Order
	items, err := order.ItemsSnapshot()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("pedido sem itens deveria devolver snapshot vazio, veio %d", len(items))
	}
}

func TestItemsSnapshotIsFrozenCopy(t *testing.T) {
	raw, _ := json.Marshal([]OrderItem{
		{Name: "Pizza Margherita", Quantity: 1, UnitPrice: 50},
	})
	order := Order{Items: raw}

	items, err := order.ItemsSnapshot()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Pizza Margherita" || items[0].UnitPrice != 50 {
		t.Errorf("snapshot incorreto: %+v", items)
	}
}

func TestProductEffectivePrice(t *testing.T) {
	promo := 39.9
	full := Product{Name: "Pizza Margherita", Price: 50}
	onSale := Product{Name: "Pizza Margherita", Price: 50, PromoPrice: &promo}

	if got := full.EffectivePrice(); got != 50 {
		t.Errorf("sem promoção EffectivePrice = %v, want 50", got)
	}
	if got := onSale.EffectivePrice(); got != promo {
		t.Errorf("com promoção EffectivePrice = %v, want %v", got, promo)
	}
}
