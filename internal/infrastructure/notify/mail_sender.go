// Package notify implementa los canales de salida hacia el proveedor:
// correo SMTP con el PDF de la orden adjunto y mensajes de texto vía
// WhatsApp Cloud API.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/pkg/config"
)

// Asegura que GomailSender implementa procurement.MailSender.
var _ procurement.MailSender = (*GomailSender)(nil)

// GomailSender envía correos por SMTP usando gomail.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// SendOrderMail envía el correo con el PDF adjunto. El contexto se respeta
// solo antes del dial: gomail no soporta cancelación en vuelo.
func (s *GomailSender) SendOrderMail(ctx context.Context, to, subject, body string, pdf []byte, pdfFilename string) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("mail: SMTP no configurado")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(pdfFilename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(pdf))
		return err
	}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar a %s: %w", to, err)
	}
	return nil
}
