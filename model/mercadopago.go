package model

type MercadoPagoConfig struct {
	AccessToken     string
	PublicKey       string
	WebhookSecret   string
	BaseURL         string
	NotificationURL string
}

// PixPaymentData é o que o cliente precisa para pagar via PIX:
// o código copia-e-cola e o QR renderizado
type PixPaymentData struct {
	PaymentId    int64  `json:"paymentId"`
	QRCode       string `json:"qrCode"`       // copia-e-cola
	QRCodeBase64 string `json:"qrCodeBase64"` // PNG data-uri
	ExpiresAt    string `json:"expiresAt,omitempty"`
}

// CardPreferenceData aponta para o formulário de cartão hospedado
type CardPreferenceData struct {
	PreferenceId string `json:"preferenceId"`
	InitPoint    string `json:"initPoint"`
	PublicKey    string `json:"publicKey"`
}

type CreatePaymentInput struct {
	OrderCode string `validate:"required" json:"orderCode"`
	Method    string `validate:"required" json:"method"` // pix | credit_card
}

type ConfirmPaymentInput struct {
	OrderCode string `validate:"required" json:"orderCode"`
	PaymentId int64  `validate:"required" json:"paymentId"`
}

// PaymentResult é o veredito de uma tentativa de pagamento
type PaymentResult struct {
	IsSuccess         bool    `json:"isSuccess"`
	PaymentId         int64   `json:"paymentId"`
	ExternalReference string  `json:"externalReference"` // PublicCode do pedido
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"` // approved, rejected, pending...
	Message           string  `json:"message"`
}
