package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo implementación de PromotionRepository sobre PostgreSQL.
// modelos_aplicables se guarda como text[]: la promoción enlaza por nombre
// de modelo, no por id de producto.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador de promociones. Pasar pool o tx (Querier).
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

const promotionColumns = `id, nombre, descripcion, tipo, cantidad_requerida, valor_promo, modelos_aplicables, propietario_id, estado`

// Create persiste una nueva promoción.
func (r *PromotionRepo) Create(p *entity.Promotion) error {
	query := `
		INSERT INTO promociones (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Kind, p.RequiredQty,
		p.PromoPrice, p.ApplicableModels, p.OwnerID, p.Status,
	)
	if err != nil {
		return fmt.Errorf("insert promoción: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promociones WHERE id = $1`
	p, err := scanPromotion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promoción: %w", err)
	}
	return p, nil
}

// List lista todas las promociones.
func (r *PromotionRepo) List() ([]*entity.Promotion, error) {
	return r.list(`SELECT ` + promotionColumns + ` FROM promociones ORDER BY nombre`)
}

// ListByOwner lista las promociones de un propietario.
func (r *PromotionRepo) ListByOwner(owner string) ([]*entity.Promotion, error) {
	return r.list(`SELECT `+promotionColumns+` FROM promociones WHERE propietario_id = $1 ORDER BY nombre`, owner)
}

// Delete elimina una promoción por ID.
func (r *PromotionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM promociones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promoción: %w", err)
	}
	return nil
}

func (r *PromotionRepo) list(query string, args ...any) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promociones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promoción: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPromotion(row pgx.Row) (*entity.Promotion, error) {
	var p entity.Promotion
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Kind, &p.RequiredQty,
		&p.PromoPrice, &p.ApplicableModels, &p.OwnerID, &p.Status,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
