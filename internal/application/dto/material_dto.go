package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para crear un material.
type CreateMaterialRequest struct {
	Code           string          `json:"code" validate:"required,min=1,max=100"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit" validate:"required"`
	Category       string          `json:"category"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
	TaxExempt      bool            `json:"tax_exempt"`
}

// UpdateMaterialRequest entrada para actualizar un material.
type UpdateMaterialRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Unit           *string          `json:"unit"`
	Category       *string          `json:"category"`
	ReferencePrice *decimal.Decimal `json:"reference_price"`
	TaxExempt      *bool            `json:"tax_exempt"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
	TaxExempt      bool            `json:"tax_exempt"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MaterialListResponse lista paginada de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// PriceHistoryEntry un punto del historial de precios de un material.
type PriceHistoryEntry struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplier_id"`
	Currency   string          `json:"currency"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Source     string          `json:"source"`
	ReferenceID string         `json:"reference_id"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// PriceHistoryResponse historial de precios (más reciente primero).
type PriceHistoryResponse struct {
	MaterialID string              `json:"material_id"`
	Items      []PriceHistoryEntry `json:"items"`
}
