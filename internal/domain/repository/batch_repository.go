package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmorales/heladeria-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para lotes.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE) para que las
	// operaciones concurrentes sobre el mismo lote se serialicen.
	GetForUpdate(id string) (*entity.Batch, error)
	Update(batch *entity.Batch) error
	ListByItem(itemID string) ([]*entity.Batch, error)
	// SumInUseByItem devuelve el stock actual: SUM(quantity) de los lotes
	// "En uso" del artículo. Valor derivado, sin contador cacheado.
	SumInUseByItem(itemID string) (decimal.Decimal, error)
	// HasInUseByItem indica si el artículo tiene al menos un lote "En uso"
	// (bloquea el borrado del artículo).
	HasInUseByItem(itemID string) (bool, error)
	// ListExpiring lista lotes "En uso" cuya fecha de vencimiento es anterior
	// o igual al límite dado.
	ListExpiring(until time.Time) ([]*entity.Batch, error)
}
