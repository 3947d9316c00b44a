package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData alimenta o template do e-mail de confirmação
type OrderConfirmationData struct {
	OrderCode     string
	BusinessName  string
	Items         string
	OrderType     string
	Address       string
	Total         float64
	PaymentMethod string
	Notes         string
}

// SendOrderConfirmationEmail envia o e-mail de confirmação (async, melhor
// esforço — falha aqui nunca bloqueia o pedido)
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		tmplPath := "templates/order_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Erro ao carregar template de e-mail: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Erro ao renderizar template de e-mail: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", fmt.Sprintf("%s <%s>", data.BusinessName, os.Getenv("SMTP_FROM")))
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Pedido confirmado - %s", data.OrderCode))
		m.SetBody("text/html", body.String())

		// QR do código do pedido embutido no corpo
		qrBytes, err := GenerateQRCode(data.OrderCode, 300)
		if err == nil {
			m.Embed("qr_pedido.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_pedido>"},
				"Content-Disposition": {"inline"},
			}))
		}

		host := os.Getenv("SMTP_HOST")
		port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if err != nil {
			port = 587
		}

		d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Erro ao enviar e-mail de confirmação para %s: %v", to, err)
		} else {
			log.Printf("E-mail de confirmação enviado para %s (pedido %s)", to, data.OrderCode)
		}
	}()
}
