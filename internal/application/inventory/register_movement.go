package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (Entrada, Salida,
// Venta) de forma transaccional: primero el asiento en el libro, luego el
// stock de la prenda; si cualquiera falla no queda nada a medias.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento.
// SalePrice, Location y PaymentStatus solo aplican cuando Type es Venta.
type MovementInput struct {
	ProductID     string
	Type          string
	Quantity      int64
	SalePrice     *decimal.Decimal
	Seller        string
	Location      string
	Comment       string
	PaymentStatus string
}

// RegisterMovement valida la entrada, toma la foto de comisión si es venta
// y persiste movimiento + stock en una transacción. La referencia a una
// prenda inexistente es un error explícito, no un no-op silencioso.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if !entity.ValidMovementType(input.Type) || input.ProductID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type == entity.MovementVenta {
		if input.SalePrice == nil || input.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if input.Location != entity.LocationLima && input.Location != entity.LocationProvincia {
			return nil, domain.ErrInvalidInput
		}
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		var txErr error
		mov, txErr = RegisterInTx(movRepo, productRepo, product, input, time.Now())
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterInTx persiste un movimiento y el stock resultante usando los
// repositorios del caller (misma transacción). Lo comparte el registro de
// ventas por carrito, que encadena varias líneas en una sola tx.
//
// La comisión se calcula aquí, una única vez, desde la configuración
// vigente de la prenda: ediciones posteriores no alteran ventas ya
// asentadas. El stock resultante no se recorta: puede quedar negativo.
func RegisterInTx(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	product *entity.Product,
	input MovementInput,
	now time.Time,
) (*entity.Movement, error) {
	seller := input.Seller
	if seller == "" {
		seller = entity.SellerSystem
	}

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Seller:    seller,
		Date:      now,
		Comment:   input.Comment,
		OwnerID:   product.Owner,
	}

	if input.Type == entity.MovementVenta {
		commission := commerce.ComputeCommission(product, input.Quantity, *input.SalePrice)
		mov.SalePrice = input.SalePrice
		mov.Commission = &commission
		mov.CommissionStatus = entity.CommissionPending
		mov.Location = input.Location
		mov.PaymentStatus = input.PaymentStatus
		if mov.PaymentStatus == "" {
			mov.PaymentStatus = entity.PaymentPending
		}
	}

	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}

	newStock := commerce.ApplyStockDelta(product.Stock, input.Type, input.Quantity)
	if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
		return nil, err
	}
	product.Stock = newStock

	return mov, nil
}
