package usecase

import (
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// scopedProducts devuelve el catálogo según el rol: el Dueño ve solo sus
// prendas, el resto el catálogo completo.
func scopedProducts(repo repository.ProductRepository, role, owner string) ([]*entity.Product, error) {
	if role == entity.RoleOwner && owner != "" {
		return repo.ListByOwner(owner)
	}
	return repo.List()
}
