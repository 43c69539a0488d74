package repository

import "github.com/kmorales/heladeria-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia para artículos de inventario (DIP).
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	List(onlyActive bool, limit, offset int) ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	SetActive(id string, active bool) error
	Delete(id string) error
}
