package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Prendas-api/internal/application/commissions"
	"github.com/jhoicas/Prendas-api/internal/application/inventory"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and commissions.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ commissions.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la forma que usan movimientos, altas con stock
// inicial y ventas de carrito.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCommissions inicia una transacción con los repos del cierre de
// comisiones: el alta del pago y la marcación de ventas van juntas.
func (r *TxRunner) RunCommissions(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	payRepo repository.CommissionPaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	payRepo := NewCommissionPaymentRepository(tx)

	if err := fn(movRepo, payRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
