package utils

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode gera o PNG do QR (usado para o PIX copia-e-cola e
// para o código do pedido nos e-mails)
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}

// GenerateQRCodeDataURI gera o QR já no formato que o front renderiza direto
func GenerateQRCodeDataURI(content string, size int) (string, error) {
	png, err := GenerateQRCode(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
