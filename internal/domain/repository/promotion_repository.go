package repository

import "github.com/jhoicas/Prendas-api/internal/domain/entity"

// PromotionRepository define el puerto de persistencia para Promotion (DIP).
// Las promociones se crean y se borran; no hay edición parcial.
type PromotionRepository interface {
	Create(promotion *entity.Promotion) error
	GetByID(id string) (*entity.Promotion, error)
	List() ([]*entity.Promotion, error)
	ListByOwner(owner string) ([]*entity.Promotion, error)
	Delete(id string) error
}
