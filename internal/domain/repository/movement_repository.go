package repository

import "github.com/kmorales/heladeria-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de lote.
// Los movimientos son append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByBatch(batchID string) ([]*entity.Movement, error)
}
