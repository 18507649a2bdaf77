package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequestItemInput línea de una solicitud de cotización.
type QuoteRequestItemInput struct {
	MaterialID string          `json:"material_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateQuoteRequest entrada para crear una solicitud de cotización.
type CreateQuoteRequest struct {
	SupplierID string                  `json:"supplier_id" validate:"required"`
	Notes      string                  `json:"notes"`
	Items      []QuoteRequestItemInput `json:"items" validate:"required,min=1"`
}

// QuotedPriceInput precio cotizado por el proveedor para una línea existente.
type QuotedPriceInput struct {
	ItemID    string          `json:"item_id" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

// RecordQuoteRequest entrada para registrar la respuesta del proveedor.
type RecordQuoteRequest struct {
	Currency string             `json:"currency" validate:"required,oneof=USD VES"`
	Prices   []QuotedPriceInput `json:"prices" validate:"required,min=1"`
}

// QuoteRequestItemResponse línea de la solicitud en respuestas.
type QuoteRequestItemResponse struct {
	ID          string           `json:"id"`
	MaterialID  string           `json:"material_id"`
	Quantity    decimal.Decimal  `json:"quantity"`
	QuotedPrice *decimal.Decimal `json:"quoted_price,omitempty"` // nil mientras esté PENDING
}

// QuoteRequestResponse salida de una solicitud de cotización.
type QuoteRequestResponse struct {
	ID         string                     `json:"id"`
	CompanyID  string                     `json:"company_id"`
	SupplierID string                     `json:"supplier_id"`
	Number     string                     `json:"number"`
	Status     string                     `json:"status"`
	Notes      string                     `json:"notes"`
	Items      []QuoteRequestItemResponse `json:"items"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

// QuoteRequestListResponse lista paginada de solicitudes.
type QuoteRequestListResponse struct {
	Items []QuoteRequestResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
