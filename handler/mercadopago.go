package handler

import (
	"bytes"
	"cardapio_digital/config"
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/model"
	"cardapio_digital/utils"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MercadoPago Service — credenciais por estabelecimento
type MercadoPago struct {
	Config model.MercadoPagoConfig
	client *http.Client
}

// NewMercadoPago falha quando o estabelecimento ainda não configurou
// as credenciais do processador (erro distinto exibido ao cliente)
func NewMercadoPago(business *model.Business) (*MercadoPago, error) {
	if business.MPAccessToken == "" {
		return nil, errors.New("credenciais do Mercado Pago não configuradas")
	}
	return &MercadoPago{
		Config: model.MercadoPagoConfig{
			AccessToken:     business.MPAccessToken,
			PublicKey:       business.MPPublicKey,
			WebhookSecret:   business.MPWebhookSecret,
			BaseURL:         config.ConfigOr("MP_BASE_URL", "https://api.mercadopago.com"),
			NotificationURL: fmt.Sprintf("%s/mercadopago/webhook?business=%s", config.Config("APP_URL"), business.Slug),
		},
		client: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (mp *MercadoPago) post(path string, idempotencyKey string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, mp.Config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+mp.Config.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	resp, err := mp.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("mercado pago %s: %d %s", path, resp.StatusCode, apiErr.Message)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (mp *MercadoPago) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, mp.Config.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+mp.Config.AccessToken)

	resp, err := mp.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mercado pago %s: %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// CreatePixPayment cria o pagamento PIX e devolve o copia-e-cola + QR
func (mp *MercadoPago) CreatePixPayment(order *model.Order) (*model.PixPaymentData, error) {
	body := map[string]any{
		"transaction_amount": order.Total,
		"description":        fmt.Sprintf("Pedido %s", order.PublicCode),
		"payment_method_id":  "pix",
		"external_reference": order.PublicCode,
		"notification_url":   mp.Config.NotificationURL,
		"payer": map[string]any{
			"email":      payerEmail(order),
			"first_name": order.CustomerName,
		},
	}

	var resp struct {
		Id                 int64  `json:"id"`
		DateOfExpiration   string `json:"date_of_expiration"`
		PointOfInteraction struct {
			TransactionData struct {
				QRCode       string `json:"qr_code"`
				QRCodeBase64 string `json:"qr_code_base64"`
			} `json:"transaction_data"`
		} `json:"point_of_interaction"`
	}

	if err := mp.post("/v1/payments", uuid.NewString(), body, &resp); err != nil {
		return nil, err
	}

	qrBase64 := resp.PointOfInteraction.TransactionData.QRCodeBase64
	if qrBase64 != "" && !strings.HasPrefix(qrBase64, "data:") {
		qrBase64 = "data:image/png;base64," + qrBase64
	}
	if qrBase64 == "" {
		// gateway sem imagem pronta: renderizamos o QR do copia-e-cola
		if dataURI, err := utils.GenerateQRCodeDataURI(resp.PointOfInteraction.TransactionData.QRCode, 400); err == nil {
			qrBase64 = dataURI
		}
	}

	return &model.PixPaymentData{
		PaymentId:    resp.Id,
		QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: qrBase64,
		ExpiresAt:    resp.DateOfExpiration,
	}, nil
}

// CreateCardPreference cria a preferência do formulário de cartão hospedado
func (mp *MercadoPago) CreateCardPreference(order *model.Order) (*model.CardPreferenceData, error) {
	appUrl := config.Config("APP_URL")
	body := map[string]any{
		"items": []map[string]any{
			{
				"title":       fmt.Sprintf("Pedido %s", order.PublicCode),
				"quantity":    1,
				"unit_price":  order.Total,
				"currency_id": "BRL",
			},
		},
		"external_reference": order.PublicCode,
		"notification_url":   mp.Config.NotificationURL,
		"back_urls": map[string]string{
			"success": fmt.Sprintf("%s/pedido/%s/sucesso", appUrl, order.PublicCode),
			"failure": fmt.Sprintf("%s/pedido/%s/pagamento", appUrl, order.PublicCode),
			"pending": fmt.Sprintf("%s/pedido/%s", appUrl, order.PublicCode),
		},
		"auto_return": "approved",
	}

	var resp struct {
		Id        string `json:"id"`
		InitPoint string `json:"init_point"`
	}
	if err := mp.post("/checkout/preferences", "", body, &resp); err != nil {
		return nil, err
	}

	return &model.CardPreferenceData{
		PreferenceId: resp.Id,
		InitPoint:    resp.InitPoint,
		PublicKey:    mp.Config.PublicKey,
	}, nil
}

// GetPayment consulta o veredito de uma tentativa de pagamento
func (mp *MercadoPago) GetPayment(paymentId int64) (model.PaymentResult, error) {
	var resp struct {
		Id                int64   `json:"id"`
		Status            string  `json:"status"`
		StatusDetail      string  `json:"status_detail"`
		TransactionAmount float64 `json:"transaction_amount"`
		ExternalReference string  `json:"external_reference"`
	}
	if err := mp.get(fmt.Sprintf("/v1/payments/%d", paymentId), &resp); err != nil {
		return model.PaymentResult{IsSuccess: false, Message: err.Error()}, err
	}

	return model.PaymentResult{
		IsSuccess:         resp.Status == "approved",
		PaymentId:         resp.Id,
		ExternalReference: resp.ExternalReference,
		Amount:            resp.TransactionAmount,
		Status:            resp.Status,
		Message:           resp.StatusDetail,
	}, nil
}

// VerifyWebhookSignature valida o header x-signature do Mercado Pago
// (ts=...,v1=...) recalculando o HMAC-SHA256 do manifesto
func (mp *MercadoPago) VerifyWebhookSignature(xSignature, xRequestId, dataId string) bool {
	if mp.Config.WebhookSecret == "" || xSignature == "" {
		return false
	}

	var ts, v1 string
	for _, part := range strings.Split(xSignature, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "ts":
			ts = kv[1]
		case "v1":
			v1 = kv[1]
		}
	}
	if ts == "" || v1 == "" {
		return false
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(dataId), xRequestId, ts)
	h := hmac.New(sha256.New, []byte(mp.Config.WebhookSecret))
	h.Write([]byte(manifest))
	expected := hex.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(v1))
}

func payerEmail(order *model.Order) string {
	if order.CustomerEmail != "" {
		return order.CustomerEmail
	}
	// MP exige um e-mail de pagador; telefone vira placeholder estável
	return fmt.Sprintf("cliente-%s@cardapiodigital.com.br", order.CustomerPhone)
}

// CreatePayment abre a etapa de pagamento online de um pedido pendente
func CreatePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("CreatePayment").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var order model.Order
	if err := db.Preload("Business").
		Where("public_code = ? AND status = ?", input.OrderCode, constants.OrderStatusPendingPayment).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Pedido inválido ou já pago", err)
	}

	mp, err := NewMercadoPago(order.Business)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.MP_NOT_CONFIGURED, err)
	}

	switch constants.NormalizePaymentMethod(input.Method) {
	case constants.PaymentMethodPix:
		pix, err := mp.CreatePixPayment(&order)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadGateway, "Não foi possível gerar o PIX", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"method": constants.PaymentMethodPix,
			"pix":    pix,
		})
	case constants.PaymentMethodCreditCard:
		pref, err := mp.CreateCardPreference(&order)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadGateway, "Não foi possível iniciar o pagamento", err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"method":     constants.PaymentMethodCreditCard,
			"preference": pref,
		})
	default:
		return utils.FieldErrorResponse(c, "Forma de pagamento não exige etapa online", "method")
	}
}

// ConfirmPayment é a confirmação disparada pelo próprio cliente após a
// tentativa no widget; reconsulta o gateway antes de liberar o pedido
func ConfirmPayment(c *fiber.Ctx) error {
	input, ok := c.Locals("ConfirmPayment").(model.ConfirmPaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var order model.Order
	if err := db.Preload("Business").Where("public_code = ?", input.OrderCode).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	mp, err := NewMercadoPago(order.Business)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.MP_NOT_CONFIGURED, err)
	}

	result, err := mp.GetPayment(input.PaymentId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Não foi possível consultar o pagamento", err)
	}

	if !result.IsSuccess || result.ExternalReference != order.PublicCode {
		// recusado: cliente permanece na etapa de pagamento e pode tentar
		// de novo ou trocar a forma
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"approved": false,
			"status":   result.Status,
			"message":  "Pagamento não aprovado",
		})
	}

	updated, err := applyPaymentApproved(db, order.BusinessId, order.PublicCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao confirmar o pagamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"approved": true,
		"order":    updated,
	})
}

// MercadoPagoWebhook é a notificação servidor-a-servidor. A atualização
// é idempotente: reentrega do evento não tem efeito adicional.
func MercadoPagoWebhook(c *fiber.Ctx) error {
	businessSlug := c.Query("business")
	dataId := c.Query("data.id")
	eventType := c.Query("type")

	if eventType != "payment" || dataId == "" {
		return c.JSON(fiber.Map{"status": "ignored"})
	}

	var business model.Business
	if err := database.DB.Where("slug = ?", businessSlug).First(&business).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "unknown business"})
	}

	mp, err := NewMercadoPago(&business)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "not configured"})
	}

	if !mp.VerifyWebhookSignature(c.Get("x-signature"), c.Get("x-request-id"), dataId) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "invalid signature"})
	}

	var paymentId int64
	if _, err := fmt.Sscanf(dataId, "%d", &paymentId); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "bad payment id"})
	}

	result, err := mp.GetPayment(paymentId)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "gateway error"})
	}

	if result.IsSuccess && result.ExternalReference != "" {
		if _, err := applyPaymentApproved(database.DB, business.ID, result.ExternalReference); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, errOrderWrongBusiness) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "unknown order"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "update failed"})
		}
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
