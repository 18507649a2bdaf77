package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra y sus líneas.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseOrderItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetItemsByOrderID(id string) ([]*entity.PurchaseOrderItem, error)
	Update(order *entity.PurchaseOrder) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error)
	// NextNumber reserva el siguiente consecutivo de orden para la empresa.
	NextNumber(companyID string) (int64, error)
}
