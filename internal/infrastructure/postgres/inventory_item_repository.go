package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, category_id, supplier, unit_type,
			extra_price, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullable(item.CategoryID), item.Supplier, item.UnitType,
		item.ExtraPrice, item.Description, item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, name, COALESCE(category_id, ''), supplier, unit_type,
			extra_price, description, active, created_at, updated_at
		FROM inventory_items WHERE id = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.CategoryID, &it.Supplier, &it.UnitType,
		&it.ExtraPrice, &it.Description, &it.Active, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// List lista artículos con paginación. onlyActive filtra los desactivados.
func (r *InventoryItemRepo) List(onlyActive bool, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, name, COALESCE(category_id, ''), supplier, unit_type,
			extra_price, description, active, created_at, updated_at
		FROM inventory_items
		WHERE ($1 = false OR active = true)
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.CategoryID, &it.Supplier, &it.UnitType,
			&it.ExtraPrice, &it.Description, &it.Active, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un artículo existente.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category_id = $3, supplier = $4, unit_type = $5,
			extra_price = $6, description = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, nullable(item.CategoryID), item.Supplier, item.UnitType,
		item.ExtraPrice, item.Description, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// SetActive cambia solo la bandera de activo.
func (r *InventoryItemRepo) SetActive(id string, active bool) error {
	query := `UPDATE inventory_items SET active = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, active)
	if err != nil {
		return fmt.Errorf("set inventory item active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el artículo. Los lotes y movimientos asociados caen por
// ON DELETE CASCADE; el caso de uso ya verificó que ninguno está "En uso".
func (r *InventoryItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullable convierte "" en NULL para columnas con FK opcional.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
