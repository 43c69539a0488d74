package entity

import "time"

// Category clasifica artículos de inventario y productos de la heladería
// (lácteos, toppings, desechables...).
type Category struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
