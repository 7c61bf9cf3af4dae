package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/commerce"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// PromotionUseCase administra promociones y sugiere cuáles aplican a un
// carrito en curso.
type PromotionUseCase struct {
	promoRepo   repository.PromotionRepository
	productRepo repository.ProductRepository
}

// NewPromotionUseCase construye el caso de uso de promociones.
func NewPromotionUseCase(promoRepo repository.PromotionRepository, productRepo repository.ProductRepository) *PromotionUseCase {
	return &PromotionUseCase{promoRepo: promoRepo, productRepo: productRepo}
}

// CreatePromotionInput datos para crear una promoción.
type CreatePromotionInput struct {
	Name             string
	Description      string
	Kind             string
	RequiredQty      int64
	PromoPrice       decimal.Decimal
	ApplicableModels []string
	OwnerID          string
}

// Create valida y persiste la promoción, activa desde el alta.
func (uc *PromotionUseCase) Create(ctx context.Context, input CreatePromotionInput) (*entity.Promotion, error) {
	if input.Name == "" || input.RequiredQty <= 0 || len(input.ApplicableModels) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Kind != entity.PromoFixedBundle && input.Kind != entity.PromoPercentage {
		return nil, domain.ErrInvalidInput
	}
	if !input.PromoPrice.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	promo := &entity.Promotion{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Description:      input.Description,
		Kind:             input.Kind,
		RequiredQty:      input.RequiredQty,
		PromoPrice:       input.PromoPrice,
		ApplicableModels: input.ApplicableModels,
		OwnerID:          input.OwnerID,
		Status:           entity.PromoActive,
	}
	if err := uc.promoRepo.Create(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// List devuelve las promociones visibles para el rol: todas para el
// Administrador General y los vendedores, las del propietario para el Dueño.
func (uc *PromotionUseCase) List(ctx context.Context, role, owner string) ([]*entity.Promotion, error) {
	if role == entity.RoleOwner && owner != "" {
		return uc.promoRepo.ListByOwner(owner)
	}
	return uc.promoRepo.List()
}

// Delete elimina la promoción.
func (uc *PromotionUseCase) Delete(ctx context.Context, id string) error {
	promo, err := uc.promoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if promo == nil {
		return domain.ErrNotFound
	}
	return uc.promoRepo.Delete(id)
}

// SuggestLine una línea del carrito en curso para evaluar promociones.
type SuggestLine struct {
	ProductID string
	Quantity  int64
}

// Suggest devuelve las promociones activas que el carrito en curso ya
// cumple. Las variantes de talla y color de un mismo modelo suman juntas
// para la cantidad requerida.
func (uc *PromotionUseCase) Suggest(ctx context.Context, lines []SuggestLine) ([]*entity.Promotion, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	cart := make([]commerce.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		cart = append(cart, commerce.CartLine{
			Product:   product,
			Quantity:  line.Quantity,
			UnitPrice: product.BasePrice,
		})
	}

	promotions, err := uc.promoRepo.List()
	if err != nil {
		return nil, err
	}
	return commerce.EligiblePromotions(cart, promotions), nil
}
