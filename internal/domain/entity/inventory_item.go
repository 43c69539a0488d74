package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para un artículo de inventario.
const (
	UnitKilogramos = "kilogramos"
	UnitUnidades   = "unidades"
	UnitLitros     = "litros"
	UnitLibras     = "libras"
	UnitGramos     = "gramos"
)

// ValidUnit indica si la unidad de medida pertenece al conjunto cerrado.
func ValidUnit(u string) bool {
	switch u {
	case UnitKilogramos, UnitUnidades, UnitLitros, UnitLibras, UnitGramos:
		return true
	}
	return false
}

// InventoryItem representa un insumo de la heladería (leche, azúcar, vasos...).
// El stock actual no se guarda aquí: se deriva de los lotes "En uso" en cada
// lectura. Active es una baja lógica; los lotes existentes siguen siendo
// legibles pero no operables mientras el artículo esté inactivo.
type InventoryItem struct {
	ID          string
	Name        string
	CategoryID  string
	Supplier    string
	UnitType    string // kilogramos, unidades, litros, libras, gramos
	ExtraPrice  decimal.Decimal
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
