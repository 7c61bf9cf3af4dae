package inventory

import (
	"context"

	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el par movimiento + stock
// (y el alta prenda + entrada inicial) se persista completo o no se persista.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
