package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de cotización.
const (
	QuoteStatusPending = "PENDING" // enviada al proveedor, sin respuesta
	QuoteStatusQuoted  = "QUOTED"  // proveedor respondió con precios
	QuoteStatusClosed  = "CLOSED"  // cerrada (convertida en orden o descartada)
)

// QuoteRequest representa una solicitud de cotización a un proveedor.
type QuoteRequest struct {
	ID          string
	CompanyID   string
	SupplierID  string
	Number      string
	Status      string // ver constantes QuoteStatus*
	Notes       string
	RequestedBy string // user ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuoteRequestItem es una línea de la solicitud. QuotedPrice queda inválido
// hasta que el proveedor responde.
type QuoteRequestItem struct {
	ID             string
	QuoteRequestID string
	MaterialID     string
	Quantity       decimal.Decimal
	QuotedPrice    decimal.NullDecimal // precio unitario cotizado; Valid=false mientras esté PENDING
}
