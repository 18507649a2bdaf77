package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Material, error)
	Update(material *entity.Material) error
	// UpdateReferencePrice actualiza solo el precio de referencia (lo usa la
	// creación de órdenes al pactar un precio nuevo).
	UpdateReferencePrice(materialID string, price decimal.Decimal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error)
	Delete(id string) error
}
