package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// ProductUseCase cubre la consulta y edición del catálogo de prendas. El
// alta con stock inicial vive en inventory.CreateProductUseCase porque
// necesita transacción; acá no hay escrituras encadenadas.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewProductUseCase construye el caso de uso de catálogo.
func NewProductUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, movRepo: movRepo}
}

// List devuelve el catálogo visible para el rol: completo para el
// Administrador General y los vendedores, filtrado por propietario para el
// Dueño.
func (uc *ProductUseCase) List(ctx context.Context, role, owner string) ([]*entity.Product, error) {
	if role == entity.RoleOwner && owner != "" {
		return uc.productRepo.ListByOwner(owner)
	}
	return uc.productRepo.List()
}

// Get devuelve una prenda por id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// UpdateProductInput cambios editables de una prenda. El stock NO se edita
// por acá: solo cambia registrando movimientos. Los punteros nil dejan el
// campo como está.
type UpdateProductInput struct {
	Name            *string
	Size            *string
	Color           *string
	BasePrice       *decimal.Decimal
	Owner           *string
	CommissionValue *decimal.Decimal
	CommissionKind  *string
}

// Update aplica los cambios. Las ventas ya registradas conservan la
// comisión calculada en su momento; la nueva configuración rige solo hacia
// adelante.
func (uc *ProductUseCase) Update(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *input.Name
	}
	if input.Size != nil {
		if !entity.ValidSize(*input.Size) {
			return nil, domain.ErrInvalidInput
		}
		product.Size = *input.Size
	}
	if input.Color != nil {
		product.Color = *input.Color
	}
	if input.BasePrice != nil {
		if input.BasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.BasePrice = *input.BasePrice
	}
	if input.Owner != nil {
		if !entity.ValidOwner(*input.Owner) {
			return nil, domain.ErrInvalidInput
		}
		product.Owner = *input.Owner
	}
	if input.CommissionValue != nil {
		if input.CommissionValue.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CommissionValue = *input.CommissionValue
	}
	if input.CommissionKind != nil {
		if *input.CommissionKind != entity.CommissionFlat && *input.CommissionKind != entity.CommissionPercentage {
			return nil, domain.ErrInvalidInput
		}
		product.CommissionKind = *input.CommissionKind
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina la prenda del catálogo. Su historial de movimientos queda
// intacto; las consultas que lo cruzan toleran la referencia huérfana.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// History devuelve los movimientos de una prenda, más recientes primero.
func (uc *ProductUseCase) History(ctx context.Context, productID string) ([]*entity.Movement, error) {
	return uc.movRepo.ListByProduct(productID)
}
