package repository

import "github.com/jhoicas/Prendas-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Los movimientos son inmutables salvo el parche de estado de
// comisión, que se aplica en bloque por vendedor al liquidar.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List devuelve todos los movimientos, más recientes primero.
	List(limit, offset int) ([]*entity.Movement, error)
	ListBySeller(seller string, limit, offset int) ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	// ListPendingSales devuelve las ventas con comisión pendiente, de todos
	// los vendedores o de uno (seller vacío = todos).
	ListPendingSales(seller string) ([]*entity.Movement, error)
	// MarkCommissionsPaid marca como pagadas TODAS las comisiones pendientes
	// del vendedor y devuelve cuántas ventas tocó.
	MarkCommissionsPaid(seller string) (int64, error)
}
