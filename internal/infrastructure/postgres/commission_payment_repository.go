package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

var _ repository.CommissionPaymentRepository = (*CommissionPaymentRepo)(nil)

// CommissionPaymentRepo implementación de CommissionPaymentRepository sobre
// PostgreSQL. Solo inserta y lee: los pagos no se editan ni borran.
type CommissionPaymentRepo struct {
	q Querier
}

// NewCommissionPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewCommissionPaymentRepository(q Querier) *CommissionPaymentRepo {
	return &CommissionPaymentRepo{q: q}
}

const paymentColumns = `id, vendedor, monto, fecha, periodo`

// Create persiste un pago de comisiones.
func (r *CommissionPaymentRepo) Create(p *entity.CommissionPayment) error {
	query := `
		INSERT INTO pagos_comisiones (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Seller, p.Amount, p.Date, p.Period,
	)
	if err != nil {
		return fmt.Errorf("insert pago de comisiones: %w", err)
	}
	return nil
}

// List lista todos los pagos, más recientes primero.
func (r *CommissionPaymentRepo) List() ([]*entity.CommissionPayment, error) {
	return r.list(`SELECT ` + paymentColumns + ` FROM pagos_comisiones ORDER BY fecha DESC`)
}

// ListBySeller lista los pagos de un vendedor, más recientes primero.
func (r *CommissionPaymentRepo) ListBySeller(seller string) ([]*entity.CommissionPayment, error) {
	return r.list(`SELECT `+paymentColumns+` FROM pagos_comisiones WHERE vendedor = $1 ORDER BY fecha DESC`, seller)
}

func (r *CommissionPaymentRepo) list(query string, args ...any) ([]*entity.CommissionPayment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pagos de comisiones: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommissionPayment
	for rows.Next() {
		var p entity.CommissionPayment
		if err := rows.Scan(&p.ID, &p.Seller, &p.Amount, &p.Date, &p.Period); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
