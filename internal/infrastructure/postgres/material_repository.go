package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un nuevo material. El código es único por empresa.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (id, company_id, code, name, description, unit, category, reference_price, tax_exempt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.CompanyID, material.Code, material.Name, material.Description,
		material.Unit, material.Category, material.ReferencePrice, material.TaxExempt,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `
		SELECT id, company_id, code, name, description, unit, category, reference_price, tax_exempt, created_at, updated_at
		FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.Code, &m.Name, &m.Description, &m.Unit, &m.Category,
		&m.ReferencePrice, &m.TaxExempt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// GetByCompanyAndCode obtiene un material por empresa y código interno.
func (r *MaterialRepo) GetByCompanyAndCode(companyID, code string) (*entity.Material, error) {
	query := `
		SELECT id, company_id, code, name, description, unit, category, reference_price, tax_exempt, created_at, updated_at
		FROM materials WHERE company_id = $1 AND code = $2`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, companyID, code).Scan(
		&m.ID, &m.CompanyID, &m.Code, &m.Name, &m.Description, &m.Unit, &m.Category,
		&m.ReferencePrice, &m.TaxExempt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material by code: %w", err)
	}
	return &m, nil
}

// Update actualiza un material existente. El código no se modifica.
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, description = $3, unit = $4, category = $5, reference_price = $6, tax_exempt = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Description, material.Unit, material.Category,
		material.ReferencePrice, material.TaxExempt, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateReferencePrice actualiza solo el precio de referencia (lo usa la creación de órdenes).
func (r *MaterialRepo) UpdateReferencePrice(materialID string, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE materials SET reference_price = $2, updated_at = now() WHERE id = $1`,
		materialID, price,
	)
	if err != nil {
		return fmt.Errorf("update reference price: %w", err)
	}
	return nil
}

// ListByCompany lista materiales por empresa con paginación.
func (r *MaterialRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error) {
	query := `
		SELECT id, company_id, code, name, description, unit, category, reference_price, tax_exempt, created_at, updated_at
		FROM materials WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Code, &m.Name, &m.Description, &m.Unit,
			&m.Category, &m.ReferencePrice, &m.TaxExempt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un material por ID.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
