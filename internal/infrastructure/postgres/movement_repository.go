package postgres

import (
	"context"
	"fmt"

	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// La tabla es append-only: no existen UPDATE ni DELETE sobre movements.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, batch_id, type, quantity, reason, actor_id, actor_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.BatchID, movement.Type, movement.Quantity,
		movement.Reason, movement.ActorID, movement.ActorName, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByBatch lista los movimientos de un lote en orden cronológico.
func (r *MovementRepo) ListByBatch(batchID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, batch_id, type, quantity, reason, actor_id, actor_name, created_at
		FROM movements WHERE batch_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.BatchID, &m.Type, &m.Quantity,
			&m.Reason, &m.ActorID, &m.ActorName, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
