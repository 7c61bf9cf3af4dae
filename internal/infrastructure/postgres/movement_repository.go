package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, producto_id, tipo, cantidad, precio_venta, comision_pagada, estado_comision, vendedor, ubicacion, fecha, comentario, propietario_id, estado_pago`

// Create persiste un movimiento. Los campos de venta (precio, comisión,
// estados) viajan como NULL cuando no aplican.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movimientos (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.Quantity,
		m.SalePrice, m.Commission, nullIfEmpty(m.CommissionStatus),
		m.Seller, nullIfEmpty(m.Location), m.Date, m.Comment,
		m.OwnerID, nullIfEmpty(m.PaymentStatus),
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List devuelve los movimientos más recientes primero, paginados.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListBySeller devuelve los movimientos de un vendedor, más recientes primero.
func (r *MovementRepo) ListBySeller(seller string, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos WHERE vendedor = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	return r.list(query, seller, limit, offset)
}

// ListByProduct devuelve los movimientos de una prenda, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos WHERE producto_id = $1 ORDER BY fecha DESC`
	return r.list(query, productID)
}

// ListPendingSales devuelve las ventas con comisión pendiente; seller vacío
// trae las de todos los vendedores.
func (r *MovementRepo) ListPendingSales(seller string) ([]*entity.Movement, error) {
	base := `SELECT ` + movementColumns + ` FROM movimientos
		WHERE tipo = $1 AND estado_comision = $2`
	if seller == "" {
		return r.list(base+` ORDER BY fecha DESC`, entity.MovementVenta, entity.CommissionPending)
	}
	return r.list(base+` AND vendedor = $3 ORDER BY fecha DESC`,
		entity.MovementVenta, entity.CommissionPending, seller)
}

// MarkCommissionsPaid marca como pagadas todas las comisiones pendientes del
// vendedor (el pago no apunta a ventas concretas) y devuelve las filas tocadas.
func (r *MovementRepo) MarkCommissionsPaid(seller string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE movimientos SET estado_comision = $1
		 WHERE vendedor = $2 AND estado_comision = $3 AND tipo = $4`,
		entity.CommissionPaid, seller, entity.CommissionPending, entity.MovementVenta,
	)
	if err != nil {
		return 0, fmt.Errorf("marcar comisiones pagadas: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var commissionStatus, location, paymentStatus *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity,
		&m.SalePrice, &m.Commission, &commissionStatus,
		&m.Seller, &location, &m.Date, &m.Comment,
		&m.OwnerID, &paymentStatus,
	)
	if err != nil {
		return nil, err
	}
	m.CommissionStatus = derefString(commissionStatus)
	m.Location = derefString(location)
	m.PaymentStatus = derefString(paymentStatus)
	return &m, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
