package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor. El RIF es único por empresa.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_id, rif, name, contact_name, email, whatsapp_phone, address, payment_terms_days, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyID, supplier.RIF, supplier.Name, supplier.ContactName,
		supplier.Email, supplier.WhatsAppPhone, supplier.Address, supplier.PaymentTermsDays,
		supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, rif, name, contact_name, email, whatsapp_phone, address, payment_terms_days, active, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.RIF, &s.Name, &s.ContactName, &s.Email, &s.WhatsAppPhone,
		&s.Address, &s.PaymentTermsDays, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// GetByCompanyAndRIF obtiene un proveedor por empresa y RIF.
func (r *SupplierRepo) GetByCompanyAndRIF(companyID, rif string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, rif, name, contact_name, email, whatsapp_phone, address, payment_terms_days, active, created_at, updated_at
		FROM suppliers WHERE company_id = $1 AND rif = $2`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, companyID, rif).Scan(
		&s.ID, &s.CompanyID, &s.RIF, &s.Name, &s.ContactName, &s.Email, &s.WhatsAppPhone,
		&s.Address, &s.PaymentTermsDays, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by RIF: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor existente. El RIF no se modifica.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact_name = $3, email = $4, whatsapp_phone = $5, address = $6, payment_terms_days = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.Email, supplier.WhatsAppPhone,
		supplier.Address, supplier.PaymentTermsDays, supplier.Active, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// ListByCompany lista proveedores por empresa con paginación.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, rif, name, contact_name, email, whatsapp_phone, address, payment_terms_days, active, created_at, updated_at
		FROM suppliers WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.RIF, &s.Name, &s.ContactName, &s.Email,
			&s.WhatsAppPhone, &s.Address, &s.PaymentTermsDays, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
