package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmorales/heladeria-api/internal/domain"
)

// Estados de un lote. "Vencido" y "Dañado" solo se fuerzan mediante una
// operación explícita, nunca por comparación de fechas.
const (
	BatchStatusEnUso   = "En uso"
	BatchStatusAgotado = "Agotado"
	BatchStatusVencido = "Vencido"
	BatchStatusDanado  = "Dañado"
)

// Batch representa un lote de un artículo de inventario. La cantidad nunca
// es negativa; cada mutación de cantidad produce exactamente un Movement
// (lo garantiza el caso de uso, que persiste ambos en la misma transacción).
type Batch struct {
	ID              string
	InventoryItemID string
	Code            string // generado: prefijo del nombre del artículo + ULID
	Quantity        decimal.Decimal
	LostQuantity    decimal.Decimal // acumulado de operaciones "daño"
	PurchaseDate    time.Time
	ExpirationDate  *time.Time
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBatch construye un lote recién comprado con estado "En uso".
func NewBatch(id, itemID, code string, quantity decimal.Decimal, purchaseDate time.Time, expirationDate *time.Time, now time.Time) *Batch {
	return &Batch{
		ID:              id,
		InventoryItemID: itemID,
		Code:            code,
		Quantity:        quantity,
		LostQuantity:    decimal.Zero,
		PurchaseDate:    purchaseDate,
		ExpirationDate:  expirationDate,
		Status:          BatchStatusEnUso,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyEntrada suma cantidad al lote. Un lote "Agotado" que vuelve a tener
// existencias regresa a "En uso"; "Vencido" y "Dañado" son terminales.
func (b *Batch) ApplyEntrada(qty decimal.Decimal, now time.Time) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	b.Quantity = b.Quantity.Add(qty)
	if b.Status == BatchStatusAgotado && b.Quantity.GreaterThan(decimal.Zero) {
		b.Status = BatchStatusEnUso
	}
	b.UpdatedAt = now
	return nil
}

// ApplySalida descuenta cantidad. Falla con ErrInsufficientStock si la
// cantidad solicitada excede la existente; al llegar a cero el lote pasa a
// "Agotado" (salvo que ya esté forzado a Vencido/Dañado).
func (b *Batch) ApplySalida(qty decimal.Decimal, now time.Time) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if qty.GreaterThan(b.Quantity) {
		return domain.ErrInsufficientStock
	}
	b.Quantity = b.Quantity.Sub(qty)
	if b.Quantity.IsZero() && b.Status == BatchStatusEnUso {
		b.Status = BatchStatusAgotado
	}
	b.UpdatedAt = now
	return nil
}

// ApplyDanio descuenta cantidad dañada y la acumula en LostQuantity. Si el
// daño consume todo el lote, el estado queda "Dañado"; un daño parcial no
// cambia el estado.
func (b *Batch) ApplyDanio(qty decimal.Decimal, now time.Time) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if qty.GreaterThan(b.Quantity) {
		return domain.ErrInsufficientStock
	}
	b.Quantity = b.Quantity.Sub(qty)
	b.LostQuantity = b.LostQuantity.Add(qty)
	if b.Quantity.IsZero() && b.Status == BatchStatusEnUso {
		b.Status = BatchStatusDanado
	}
	b.UpdatedAt = now
	return nil
}

// ApplyVencido fuerza el estado "Vencido". Requiere fecha de vencimiento;
// la cantidad restante se conserva para auditoría, aunque deja de contar
// como stock utilizable.
func (b *Batch) ApplyVencido(now time.Time) error {
	if b.ExpirationDate == nil {
		return domain.ErrMissingExpiration
	}
	b.Status = BatchStatusVencido
	b.UpdatedAt = now
	return nil
}

// InUse indica si el lote cuenta para el stock actual del artículo.
func (b *Batch) InUse() bool {
	return b.Status == BatchStatusEnUso
}

// ExpiresWithin indica si un lote "En uso" vence dentro de los próximos
// days días. Lotes sin fecha de vencimiento nunca vencen.
func (b *Batch) ExpiresWithin(days int, now time.Time) bool {
	if b.ExpirationDate == nil || !b.InUse() {
		return false
	}
	return !b.ExpirationDate.After(now.AddDate(0, 0, days))
}
