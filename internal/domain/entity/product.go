package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de venta de la heladería (sabores, conos,
// malteadas). Distinto de InventoryItem: el producto se vende, el artículo
// de inventario se consume por lotes.
type Product struct {
	ID          string
	Name        string
	CategoryID  string
	Price       decimal.Decimal
	Description string
	ImageURL    string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
