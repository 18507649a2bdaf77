package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.QuoteRequestRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de solicitudes de cotización sobre PostgreSQL (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste la cabecera de la solicitud.
func (r *QuoteRepo) Create(qr *entity.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (id, company_id, supplier_id, number, status, notes, requested_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		qr.ID, qr.CompanyID, qr.SupplierID, qr.Number, qr.Status,
		qr.Notes, qr.RequestedBy, qr.CreatedAt, qr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote request: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la solicitud.
func (r *QuoteRepo) CreateItem(item *entity.QuoteRequestItem) error {
	query := `
		INSERT INTO quote_request_items (id, quote_request_id, material_id, quantity, quoted_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteRequestID, item.MaterialID, item.Quantity, item.QuotedPrice,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una solicitud.
func (r *QuoteRepo) GetByID(id string) (*entity.QuoteRequest, error) {
	query := `
		SELECT id, company_id, supplier_id, number, status, notes, requested_by, created_at, updated_at
		FROM quote_requests WHERE id = $1`
	var qr entity.QuoteRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&qr.ID, &qr.CompanyID, &qr.SupplierID, &qr.Number, &qr.Status,
		&qr.Notes, &qr.RequestedBy, &qr.CreatedAt, &qr.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote request: %w", err)
	}
	return &qr, nil
}

// GetItemsByRequestID obtiene las líneas de una solicitud.
func (r *QuoteRepo) GetItemsByRequestID(id string) ([]*entity.QuoteRequestItem, error) {
	query := `
		SELECT id, quote_request_id, material_id, quantity, quoted_price
		FROM quote_request_items WHERE quote_request_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuoteRequestItem
	for rows.Next() {
		var it entity.QuoteRequestItem
		if err := rows.Scan(&it.ID, &it.QuoteRequestID, &it.MaterialID, &it.Quantity, &it.QuotedPrice); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera (estado, notas).
func (r *QuoteRepo) Update(qr *entity.QuoteRequest) error {
	query := `
		UPDATE quote_requests SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, qr.ID, qr.Status, qr.Notes, qr.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update quote request: %w", err)
	}
	return nil
}

// UpdateItem actualiza el precio cotizado de una línea.
func (r *QuoteRepo) UpdateItem(item *entity.QuoteRequestItem) error {
	query := `
		UPDATE quote_request_items SET quoted_price = $2
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.QuotedPrice)
	if err != nil {
		return fmt.Errorf("update quote item: %w", err)
	}
	return nil
}

// ListByCompany lista solicitudes por empresa, más reciente primero.
func (r *QuoteRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.QuoteRequest, error) {
	query := `
		SELECT id, company_id, supplier_id, number, status, notes, requested_by, created_at, updated_at
		FROM quote_requests WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quote requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuoteRequest
	for rows.Next() {
		var qr entity.QuoteRequest
		if err := rows.Scan(&qr.ID, &qr.CompanyID, &qr.SupplierID, &qr.Number, &qr.Status,
			&qr.Notes, &qr.RequestedBy, &qr.CreatedAt, &qr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote request: %w", err)
		}
		list = append(list, &qr)
	}
	return list, rows.Err()
}
