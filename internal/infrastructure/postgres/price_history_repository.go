package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// PriceHistoryRepo implementación del historial de precios sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only.
type PriceHistoryRepo struct {
	q Querier
}

// NewPriceHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceHistoryRepository(q Querier) *PriceHistoryRepo {
	return &PriceHistoryRepo{q: q}
}

// Create persiste un registro de precio.
func (r *PriceHistoryRepo) Create(record *entity.PriceHistory) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	query := `
		INSERT INTO price_history (id, company_id, material_id, supplier_id, currency, unit_price, source, reference_id, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.CompanyID, record.MaterialID, record.SupplierID,
		record.Currency, record.UnitPrice, record.Source, record.ReferenceID, record.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price history: %w", err)
	}
	return nil
}

// ListByMaterial lista el historial de un material, más reciente primero. Los
// campos vacíos del filtro no acotan.
func (r *PriceHistoryRepo) ListByMaterial(companyID, materialID string, filter repository.PriceHistoryFilter) ([]*entity.PriceHistory, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, company_id, material_id, supplier_id, currency, unit_price, source, reference_id, recorded_at
		FROM price_history
		WHERE company_id = $1 AND material_id = $2
		  AND ($3 = '' OR supplier_id = $3)
		  AND ($4 = '' OR currency = $4)
		ORDER BY recorded_at DESC LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(context.Background(), query,
		companyID, materialID, filter.SupplierID, filter.Currency, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceHistory
	for rows.Next() {
		var p entity.PriceHistory
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.MaterialID, &p.SupplierID, &p.Currency,
			&p.UnitPrice, &p.Source, &p.ReferenceID, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan price history: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// LatestByMaterialAndSupplier devuelve el registro más reciente o nil si no hay.
func (r *PriceHistoryRepo) LatestByMaterialAndSupplier(companyID, materialID, supplierID, currency string) (*entity.PriceHistory, error) {
	query := `
		SELECT id, company_id, material_id, supplier_id, currency, unit_price, source, reference_id, recorded_at
		FROM price_history
		WHERE company_id = $1 AND material_id = $2 AND supplier_id = $3 AND currency = $4
		ORDER BY recorded_at DESC LIMIT 1`
	var p entity.PriceHistory
	err := r.q.QueryRow(context.Background(), query, companyID, materialID, supplierID, currency).Scan(
		&p.ID, &p.CompanyID, &p.MaterialID, &p.SupplierID, &p.Currency,
		&p.UnitPrice, &p.Source, &p.ReferenceID, &p.RecordedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest price: %w", err)
	}
	return &p, nil
}
