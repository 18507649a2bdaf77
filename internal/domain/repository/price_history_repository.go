package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// PriceHistoryFilter acota el listado de historial de precios. Los campos
// vacíos no filtran.
type PriceHistoryFilter struct {
	SupplierID string
	Currency   string
	Limit      int
	Offset     int
}

// PriceHistoryRepository define el puerto de persistencia del historial de
// precios (append-only: solo Create y lecturas).
type PriceHistoryRepository interface {
	Create(record *entity.PriceHistory) error
	ListByMaterial(companyID, materialID string, filter PriceHistoryFilter) ([]*entity.PriceHistory, error)
	// LatestByMaterialAndSupplier devuelve el registro más reciente o nil si no hay.
	LatestByMaterialAndSupplier(companyID, materialID, supplierID, currency string) (*entity.PriceHistory, error)
}
