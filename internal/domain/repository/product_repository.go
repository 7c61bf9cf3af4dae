package repository

import "github.com/jhoicas/Prendas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El stock no se edita por Update: solo UpdateStock, y siempre como efecto
// de un movimiento registrado.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int64) error
	List() ([]*entity.Product, error)
	ListByOwner(owner string) ([]*entity.Product, error)
	Delete(id string) error
}
