package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para prendas. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, talla, color, stock, precio_base, propietario, comision_valor, comision_tipo, created_at, updated_at`

// Create persiste una nueva prenda.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO productos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Size, p.Color, p.Stock, p.BasePrice,
		p.Owner, p.CommissionValue, p.CommissionKind, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene una prenda por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Update actualiza los datos editables de una prenda. El stock no se toca
// aquí: solo cambia vía UpdateStock como efecto de un movimiento.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE productos
		SET nombre = $2, talla = $3, color = $4, precio_base = $5,
		    propietario = $6, comision_valor = $7, comision_tipo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Size, p.Color, p.BasePrice,
		p.Owner, p.CommissionValue, p.CommissionKind, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStock fija el stock de la prenda (usado por el registro de movimientos).
func (r *ProductRepo) UpdateStock(productID string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista todas las prendas.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + ` FROM productos ORDER BY nombre, talla, color`)
}

// ListByOwner lista las prendas de un propietario.
func (r *ProductRepo) ListByOwner(owner string) ([]*entity.Product, error) {
	return r.list(`SELECT `+productColumns+` FROM productos WHERE propietario = $1 ORDER BY nombre, talla, color`, owner)
}

// Delete elimina una prenda por ID (borrado duro, sin tombstone).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Size, &p.Color, &p.Stock, &p.BasePrice,
		&p.Owner, &p.CommissionValue, &p.CommissionKind, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
