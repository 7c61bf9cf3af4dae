package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// CreateProductUseCase da de alta prendas nuevas. Si la prenda entra con
// stock, el alta y el movimiento de Entrada inicial se asientan en la misma
// transacción.
type CreateProductUseCase struct {
	txRunner TxRunner
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner}
}

// CreateProductInput entrada para registrar una prenda nueva.
type CreateProductInput struct {
	Name            string
	Size            string
	Color           string
	Stock           int64
	BasePrice       decimal.Decimal
	Owner           string
	CommissionValue decimal.Decimal
	CommissionKind  string
}

// CreateProduct valida y persiste la prenda; si trae stock inicial registra
// además la Entrada correspondiente. El movimiento documenta el stock que la
// prenda ya lleva al crearse: no vuelve a aplicarse el delta.
func (uc *CreateProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidSize(input.Size) || !entity.ValidOwner(input.Owner) {
		return nil, domain.ErrInvalidInput
	}
	if input.CommissionKind != entity.CommissionFlat && input.CommissionKind != entity.CommissionPercentage {
		return nil, domain.ErrInvalidInput
	}
	if input.BasePrice.IsNegative() || input.CommissionValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Size:            input.Size,
		Color:           input.Color,
		Stock:           input.Stock,
		BasePrice:       input.BasePrice,
		Owner:           input.Owner,
		CommissionValue: input.CommissionValue,
		CommissionKind:  input.CommissionKind,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if input.Stock == 0 {
			return nil
		}
		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementEntrada,
			Quantity:  input.Stock,
			Seller:    entity.SellerSystem,
			Date:      now,
			Comment:   "Registro inicial de nueva prenda en stock",
			OwnerID:   product.Owner,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
