package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// OrderItemAddon é a cópia congelada de um adicional escolhido
type OrderItemAddon struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderItem é a cópia congelada de uma linha do carrinho. Não referencia
// o produto vivo: edições posteriores do cardápio não alteram pedidos
// históricos.
type OrderItem struct {
	Name      string           `json:"name"`
	Quantity  int              `json:"quantity"`
	UnitPrice float64          `json:"unitPrice"`
	Addons    []OrderItemAddon `json:"addons,omitempty"`
}

// Subtotal da linha: (preço unitário + adicionais) × quantidade
func (i OrderItem) Subtotal() float64 {
	unit := i.UnitPrice
	for _, a := range i.Addons {
		unit += a.Price * float64(a.Quantity)
	}
	return unit * float64(i.Quantity)
}

type Order struct {
	DTO
	PublicCode string    `gorm:"unique;size:20" json:"publicCode"` // PED-XXXXXX
	BusinessId uint      `gorm:"index;not null" json:"businessId"`
	Business   *Business `json:"business,omitempty"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	Items       datatypes.JSON `json:"items"` // snapshot de []OrderItem
	Subtotal    float64        `json:"subtotal"`
	DeliveryFee float64        `json:"deliveryFee"`
	Total       float64        `json:"total"` // fixado na criação, nunca recalculado

	OrderType       string `json:"orderType"` // delivery | pickup
	DeliveryAddress string `json:"deliveryAddress"`
	Neighborhood    string `json:"neighborhood"`

	PaymentMethod string   `json:"paymentMethod"`
	Status        string   `gorm:"index" json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	ChangeFor     *float64 `json:"changeFor"` // troco para quanto (só dinheiro)
	Notes         string   `json:"notes"`

	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// ItemsSnapshot desserializa a cópia congelada das linhas do pedido
func (o *Order) ItemsSnapshot() ([]OrderItem, error) {
	var items []OrderItem
	if len(o.Items) == 0 {
		return items, nil
	}
	err := json.Unmarshal(o.Items, &items)
	return items, err
}

type CheckoutInput struct {
	SessionId     string   `validate:"required" json:"sessionId"`
	CustomerName  string   `validate:"required" json:"customerName"`
	CustomerPhone string   `validate:"required" json:"customerPhone"`
	CustomerEmail string   `json:"customerEmail"`
	OrderType     string   `validate:"required" json:"orderType"`
	Address       string   `json:"address"`
	Neighborhood  string   `json:"neighborhood"`
	SaveAddress   bool     `json:"saveAddress"`
	PaymentMethod string   `validate:"required" json:"paymentMethod"` // rótulo exibido ("Dinheiro", "Pix"...)
	ChangeFor     *string  `json:"changeFor"`                         // valor digitado pelo cliente, ainda não validado
	Notes         string   `json:"notes"`
}

type AdvanceOrderInput struct {
	TargetStatus string `validate:"required" json:"targetStatus"`
}
