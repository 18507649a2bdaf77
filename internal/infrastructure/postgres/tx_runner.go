package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Asegura que TxRunner implementa procurement.OrderTxRunner.
var _ procurement.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción con los repos que toca la creación de una
// orden (cabecera+líneas, historial de precios, precio de referencia) y hace
// Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	priceRepo repository.PriceHistoryRepository,
	materialRepo repository.MaterialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	priceRepo := NewPriceHistoryRepository(tx)
	materialRepo := NewMaterialRepository(tx)

	if err := fn(orderRepo, priceRepo, materialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
