package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes de un registro de historial de precios.
const (
	PriceSourceQuote = "QUOTE" // precio cotizado por el proveedor
	PriceSourceOrder = "ORDER" // precio pactado en una orden de compra
)

// PriceHistory es un registro inmutable de precio de un material con un
// proveedor. La tabla es append-only: nunca se actualiza ni se borra.
type PriceHistory struct {
	ID         string
	CompanyID  string
	MaterialID string
	SupplierID string
	Currency   string // USD | VES
	UnitPrice  decimal.Decimal
	Source     string // QUOTE | ORDER
	ReferenceID string // ID de la cotización u orden que originó el precio
	RecordedAt time.Time
}
