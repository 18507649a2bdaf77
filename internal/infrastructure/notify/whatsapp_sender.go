package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/pkg/config"
)

// Asegura que WhatsAppClient implementa procurement.WhatsAppSender.
var _ procurement.WhatsAppSender = (*WhatsAppClient)(nil)

// WhatsAppClient envía mensajes de texto vía WhatsApp Cloud API (Meta).
// Usa net/http de la stdlib; no requiere librerías de terceros.
type WhatsAppClient struct {
	cfg        config.WhatsAppConfig
	httpClient *http.Client
}

// NewWhatsAppClient construye el cliente. Timeout de 30 s: la Graph API puede
// tardar bajo carga.
func NewWhatsAppClient(cfg config.WhatsAppConfig) *WhatsAppClient {
	return &WhatsAppClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled indica si el canal está configurado (token y phone number ID).
func (c *WhatsAppClient) Enabled() bool {
	return c.cfg.Token != "" && c.cfg.PhoneNumberID != ""
}

type waTextPayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

type waErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendText envía un mensaje de texto al número indicado (formato E.164).
func (c *WhatsAppClient) SendText(ctx context.Context, phone, message string) error {
	if !c.Enabled() {
		return fmt.Errorf("whatsapp: canal no configurado")
	}

	payload := waTextPayload{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
	}
	payload.Text.Body = message

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.BaseURL, c.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: enviar a %s: %w", phone, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var waErr waErrorResponse
		if json.Unmarshal(raw, &waErr) == nil && waErr.Error.Message != "" {
			return fmt.Errorf("whatsapp: API respondió %d: %s", resp.StatusCode, waErr.Error.Message)
		}
		return fmt.Errorf("whatsapp: API respondió %d", resp.StatusCode)
	}
	return nil
}
