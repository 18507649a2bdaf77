package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de órdenes de compra sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden con su desglose de totales.
func (r *OrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, company_id, supplier_id, quote_request_id, prefix, number, currency, status, date,
			base_imponible, monto_descuento, monto_venta, monto_iva, total, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.SupplierID, order.QuoteRequestID, order.Prefix,
		order.Number, order.Currency, order.Status, order.Date,
		order.BaseImponible, order.MontoDescuento, order.MontoVenta, order.MontoIVA, order.Total,
		order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden.
func (r *OrderRepo) CreateItem(item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, order_id, material_id, quantity, unit_price, tax_rate, is_exempt,
			discount_percentage, sales_percentage, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.MaterialID, item.Quantity, item.UnitPrice,
		item.TaxRate, item.IsExempt, item.DiscountPercentage, item.SalesPercentage, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden.
func (r *OrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := selectOrder + ` WHERE id = $1`
	var o entity.PurchaseOrder
	err := scanOrder(r.q.QueryRow(context.Background(), query, id), &o)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItemsByOrderID obtiene las líneas de una orden.
func (r *OrderRepo) GetItemsByOrderID(id string) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, order_id, material_id, quantity, unit_price, tax_rate, is_exempt, discount_percentage, sales_percentage, subtotal
		FROM purchase_order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MaterialID, &it.Quantity, &it.UnitPrice,
			&it.TaxRate, &it.IsExempt, &it.DiscountPercentage, &it.SalesPercentage, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera (estado, notas).
func (r *OrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, order.ID, order.Status, order.Notes, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByCompany lista órdenes por empresa, más reciente primero.
func (r *OrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := selectOrder + ` WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// NextNumber reserva el siguiente consecutivo de orden de la empresa. El
// upsert con RETURNING es atómico: dos transacciones concurrentes nunca
// reciben el mismo número.
func (r *OrderRepo) NextNumber(companyID string) (int64, error) {
	query := `
		INSERT INTO order_counters (company_id, last_number) VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_number = order_counters.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}

const selectOrder = `
	SELECT id, company_id, supplier_id, COALESCE(quote_request_id, ''), prefix, number, currency, status, date,
		base_imponible, monto_descuento, monto_venta, monto_iva, total, notes, created_by, created_at, updated_at
	FROM purchase_orders`

func scanOrder(row pgxScanner, o *entity.PurchaseOrder) error {
	return row.Scan(
		&o.ID, &o.CompanyID, &o.SupplierID, &o.QuoteRequestID, &o.Prefix, &o.Number,
		&o.Currency, &o.Status, &o.Date,
		&o.BaseImponible, &o.MontoDescuento, &o.MontoVenta, &o.MontoIVA, &o.Total,
		&o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
}
