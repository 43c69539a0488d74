package repository

import "github.com/kmorales/heladeria-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos de venta.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(onlyAvailable bool, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
