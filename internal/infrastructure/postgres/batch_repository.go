package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL
// (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes.
// Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, inventory_item_id, code, quantity, lost_quantity,
	purchase_date, expiration_date, status, created_at, updated_at`

// Create persiste un lote nuevo. Devuelve ErrDuplicate si el código ya
// existe para el artículo (índice único inventory_item_id + code).
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (id, inventory_item_id, code, quantity, lost_quantity,
			purchase_date, expiration_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.InventoryItemID, batch.Code, batch.Quantity, batch.LostQuantity,
		batch.PurchaseDate, batch.ExpirationDate, batch.Status, batch.CreatedAt, batch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE). Solo
// tiene sentido dentro de una transacción.
func (r *BatchRepo) GetForUpdate(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza cantidad, pérdidas y estado del lote.
func (r *BatchRepo) Update(batch *entity.Batch) error {
	query := `
		UPDATE batches
		SET quantity = $2, lost_quantity = $3, expiration_date = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Quantity, batch.LostQuantity, batch.ExpirationDate,
		batch.Status, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// ListByItem lista los lotes de un artículo, los más recientes primero.
func (r *BatchRepo) ListByItem(itemID string) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches
		WHERE inventory_item_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// SumInUseByItem devuelve SUM(quantity) de los lotes "En uso" del artículo.
func (r *BatchRepo) SumInUseByItem(itemID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0) FROM batches
		WHERE inventory_item_id = $1 AND status = $2`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, itemID, entity.BatchStatusEnUso).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum stock: %w", err)
	}
	return sum, nil
}

// HasInUseByItem indica si el artículo tiene al menos un lote "En uso".
func (r *BatchRepo) HasInUseByItem(itemID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM batches WHERE inventory_item_id = $1 AND status = $2
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, itemID, entity.BatchStatusEnUso).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has batch in use: %w", err)
	}
	return exists, nil
}

// ListExpiring lista lotes "En uso" con vencimiento menor o igual al límite.
func (r *BatchRepo) ListExpiring(until time.Time) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches
		WHERE status = $1 AND expiration_date IS NOT NULL AND expiration_date <= $2
		ORDER BY expiration_date ASC`
	rows, err := r.q.Query(context.Background(), query, entity.BatchStatusEnUso, until)
	if err != nil {
		return nil, fmt.Errorf("list expiring batches: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *BatchRepo) scanOne(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(
		&b.ID, &b.InventoryItemID, &b.Code, &b.Quantity, &b.LostQuantity,
		&b.PurchaseDate, &b.ExpirationDate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

func (r *BatchRepo) scanAll(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(
			&b.ID, &b.InventoryItemID, &b.Code, &b.Quantity, &b.LostQuantity,
			&b.PurchaseDate, &b.ExpirationDate, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
