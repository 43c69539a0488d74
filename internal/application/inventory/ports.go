package inventory

import (
	"context"

	"github.com/kmorales/heladeria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que lote y movimiento se persistan
// atómicamente (cada mutación de cantidad produce exactamente un movimiento).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.InventoryItemRepository,
	) error) error
}
