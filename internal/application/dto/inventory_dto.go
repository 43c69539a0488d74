package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/inventory.
type CreateItemRequest struct {
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	Supplier    string          `json:"supplier"`
	UnitType    string          `json:"unit_type"` // kilogramos, unidades, litros, libras, gramos
	ExtraPrice  decimal.Decimal `json:"extra_price"`
	Description string          `json:"description"`
}

// UpdateItemRequest body para PUT /api/inventory/:id. Campos nil no se tocan.
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Supplier    *string          `json:"supplier,omitempty"`
	UnitType    *string          `json:"unit_type,omitempty"`
	ExtraPrice  *decimal.Decimal `json:"extra_price,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ToggleStatusRequest body para PUT /api/inventory/:id/toggleStatus.
type ToggleStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// ItemResponse artículo de inventario con su stock derivado.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id"`
	Supplier     string          `json:"supplier"`
	UnitType     string          `json:"unit_type"`
	ExtraPrice   decimal.Decimal `json:"extra_price"`
	Description  string          `json:"description"`
	Active       bool            `json:"active"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateBatchRequest body para POST /api/inventory/:id/batch.
type CreateBatchRequest struct {
	Quantity       decimal.Decimal `json:"quantity"`
	PurchaseDate   *time.Time      `json:"purchase_date,omitempty"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Reason         string          `json:"reason,omitempty"` // default "Lote inicial"
}

// OperationRequest body para PUT /api/inventory/batch/:batchId/operation.
// Quantity es obligatoria para entrada/salida/daño y se ignora para vencido.
type OperationRequest struct {
	OperationType string           `json:"operation_type"` // entrada, salida, daño, vencido
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	Reason        string           `json:"reason"`
}

// BatchResponse instantánea de un lote tras crearlo u operarlo.
type BatchResponse struct {
	ID             string          `json:"id"`
	InventoryItem  string          `json:"inventory_item_id"`
	Code           string          `json:"code"`
	Quantity       decimal.Decimal `json:"quantity"`
	LostQuantity   decimal.Decimal `json:"lost_quantity"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Status         string          `json:"status"` // En uso, Agotado, Vencido, Dañado
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MovementResponse registro de auditoría de una operación sobre un lote.
type MovementResponse struct {
	ID        string          `json:"id"`
	BatchID   string          `json:"batch_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"` // delta aplicado
	Reason    string          `json:"reason"`
	ActorID   string          `json:"actor_id"`
	ActorName string          `json:"actor_name"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockResponse stock actual derivado de los lotes "En uso".
type StockResponse struct {
	InventoryItemID string          `json:"inventory_item_id"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
}
