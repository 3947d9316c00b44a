package handler

import (
	"cardapio_digital/model"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
)

func signManifest(secret, dataId, requestId, ts string) string {
	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataId, requestId, ts)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(manifest))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	const secret = "segredo-webhook"
	mp := &MercadoPago{Config: model.MercadoPagoConfig{WebhookSecret: secret}}

	dataId := "12345678"
	requestId := "req-abc"
	ts := "1693526400"
	v1 := signManifest(secret, dataId, requestId, ts)

	tests := []struct {
		name       string
		xSignature string
		xRequestId string
		dataId     string
		want       bool
	}{
		{"assinatura válida", fmt.Sprintf("ts=%s,v1=%s", ts, v1), requestId, dataId, true},
		{"ordem dos campos invertida", fmt.Sprintf("v1=%s,ts=%s", v1, ts), requestId, dataId, true},
		{"espaços entre campos", fmt.Sprintf("ts=%s, v1=%s", ts, v1), requestId, dataId, true},
		{"hmac errado", fmt.Sprintf("ts=%s,v1=%s", ts, signManifest("outro", dataId, requestId, ts)), requestId, dataId, false},
		{"ts adulterado", fmt.Sprintf("ts=999,v1=%s", v1), requestId, dataId, false},
		{"request-id diferente", fmt.Sprintf("ts=%s,v1=%s", ts, v1), "req-xyz", dataId, false},
		{"payment id diferente", fmt.Sprintf("ts=%s,v1=%s", ts, v1), requestId, "87654321", false},
		{"header vazio", "", requestId, dataId, false},
		{"header malformado", "assinatura-invalida", requestId, dataId, false},
		{"só ts", fmt.Sprintf("ts=%s", ts), requestId, dataId, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mp.VerifyWebhookSignature(tt.xSignature, tt.xRequestId, tt.dataId); got != tt.want {
				t.Errorf("VerifyWebhookSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyWebhookSignatureLowercasesDataId(t *testing.T) {
	const secret = "segredo-webhook"
	mp := &MercadoPago{Config: model.MercadoPagoConfig{WebhookSecret: secret}}

	// o manifesto usa o data.id em minúsculas, como o gateway assina
	v1 := signManifest(secret, "abc123", "req-1", "100")
	if !mp.VerifyWebhookSignature("ts=100,v1="+v1, "req-1", "ABC123") {
		t.Error("data.id alfanumérico deveria ser normalizado para minúsculas")
	}
}

func TestVerifyWebhookSignatureWithoutSecret(t *testing.T) {
	mp := &MercadoPago{Config: model.MercadoPagoConfig{}}
	if mp.VerifyWebhookSignature("ts=100,v1=deadbeef", "req-1", "123") {
		t.Error("sem segredo configurado nenhuma assinatura pode passar")
	}
}

func TestNewMercadoPagoRequiresCredentials(t *testing.T) {
	if _, err := NewMercadoPago(&model.Business{Slug: "pizzaria"}); err == nil {
		t.Error("estabelecimento sem access token deveria falhar")
	}

	mp, err := NewMercadoPago(&model.Business{Slug: "pizzaria", MPAccessToken: "TEST-token"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if mp.Config.AccessToken != "TEST-token" {
		t.Errorf("AccessToken = %q", mp.Config.AccessToken)
	}
}

func TestPayerEmailFallback(t *testing.T) {
	withEmail := &model.Order{CustomerEmail: "joao@example.com", CustomerPhone: "11999990000"}
	if got := payerEmail(withEmail); got != "joao@example.com" {
		t.Errorf("payerEmail = %q, want e-mail do cliente", got)
	}

	withoutEmail := &model.Order{CustomerPhone: "11999990000"}
	got := payerEmail(withoutEmail)
	if got == "" || got == payerEmail(&model.Order{CustomerPhone: "11888880000"}) {
		t.Errorf("fallback deveria ser estável por telefone: %q", got)
	}
}
