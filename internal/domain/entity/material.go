package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa un material o insumo que la empresa compra.
type Material struct {
	ID             string
	CompanyID      string
	Code           string // código interno, único por empresa
	Name           string
	Description    string
	Unit           string // unidad de medida (KG, M, UND, SACO, ...)
	Category       string
	ReferencePrice decimal.Decimal // último precio de referencia (se actualiza con cada orden)
	TaxExempt      bool            // true = el material está exento de IVA
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
