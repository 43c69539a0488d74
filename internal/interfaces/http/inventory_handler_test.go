package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/application/inventory"
	"github.com/kmorales/heladeria-api/internal/application/usecase"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
	apphttp "github.com/kmorales/heladeria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para ejercer el handler con el caso de uso real
// ──────────────────────────────────────────────────────────────────────────────

type memItems struct {
	byID map[string]*entity.InventoryItem
}

func (m *memItems) Create(item *entity.InventoryItem) error { m.byID[item.ID] = item; return nil }
func (m *memItems) GetByID(id string) (*entity.InventoryItem, error) {
	item, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}
func (m *memItems) List(bool, int, int) ([]*entity.InventoryItem, error) { return nil, nil }
func (m *memItems) Update(item *entity.InventoryItem) error {
	m.byID[item.ID] = item
	return nil
}
func (m *memItems) SetActive(string, bool) error { return nil }
func (m *memItems) Delete(id string) error       { delete(m.byID, id); return nil }

type memBatches struct {
	byID map[string]*entity.Batch
}

func (m *memBatches) Create(b *entity.Batch) error { m.byID[b.ID] = b; return nil }
func (m *memBatches) GetByID(id string) (*entity.Batch, error) {
	b, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (m *memBatches) GetForUpdate(id string) (*entity.Batch, error) { return m.GetByID(id) }
func (m *memBatches) Update(b *entity.Batch) error {
	cp := *b
	m.byID[b.ID] = &cp
	return nil
}
func (m *memBatches) ListByItem(string) ([]*entity.Batch, error)      { return nil, nil }
func (m *memBatches) SumInUseByItem(string) (decimal.Decimal, error)  { return decimal.Zero, nil }
func (m *memBatches) HasInUseByItem(string) (bool, error)             { return false, nil }
func (m *memBatches) ListExpiring(time.Time) ([]*entity.Batch, error) { return nil, nil }

type memMovements struct {
	rows []*entity.Movement
}

func (m *memMovements) Create(mov *entity.Movement) error { m.rows = append(m.rows, mov); return nil }
func (m *memMovements) ListByBatch(string) ([]*entity.Movement, error) {
	return m.rows, nil
}

// memTx ejecuta la función directamente con los repos en memoria.
type memTx struct {
	batches *memBatches
	movs    *memMovements
	items   *memItems
}

func (tx *memTx) Run(_ context.Context, fn func(
	batchRepo repository.BatchRepository,
	movRepo repository.MovementRepository,
	itemRepo repository.InventoryItemRepository,
) error) error {
	return fn(tx.batches, tx.movs, tx.items)
}

// buildInventoryApp monta solo la ruta de operaciones, sin middlewares de auth,
// con un lote precargado bajo un artículo activo.
func buildInventoryApp(t *testing.T, batch *entity.Batch) (*fiber.App, *memBatches, *memMovements) {
	t.Helper()

	now := time.Now()
	items := &memItems{byID: map[string]*entity.InventoryItem{
		batch.InventoryItemID: {
			ID:        batch.InventoryItemID,
			Name:      "Leche",
			UnitType:  entity.UnitLitros,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}}
	batches := &memBatches{byID: map[string]*entity.Batch{batch.ID: batch}}
	movs := &memMovements{}
	tx := &memTx{batches: batches, movs: movs, items: items}

	batchUC := inventory.NewBatchUseCase(tx, items, batches, movs, time.UTC)
	itemUC := usecase.NewItemUseCase(items, batches)
	handler := apphttp.NewInventoryHandler(itemUC, batchUC, nil)

	app := fiber.New()
	app.Put("/api/inventory/batch/:batchId/operation", handler.ApplyOperation)
	return app, batches, movs
}

func operationRequest(t *testing.T, batchID, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/inventory/batch/"+batchID+"/operation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de mapeo de estados HTTP en /operation
// ──────────────────────────────────────────────────────────────────────────────

// Marcar vencido un lote sin fecha de vencimiento es un error de entrada,
// no un conflicto: debe responder 400 Bad Request con MISSING_EXPIRATION.
func TestApplyOperation_VencidoSinFecha_Retorna400(t *testing.T) {
	now := time.Now()
	batch := entity.NewBatch("lote-1", "item-1", "LECHE-01", decimal.NewFromInt(10), now, nil, now)
	app, batches, movs := buildInventoryApp(t, batch)

	resp, err := app.Test(operationRequest(t, "lote-1", `{"operation_type":"vencido","reason":"revisión"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"vencido sin fecha de vencimiento debe ser 400, no 409")
	assert.Equal(t, "MISSING_EXPIRATION", decodeError(t, resp).Code)

	// El lote no cambió y no se registró ningún movimiento.
	assert.Equal(t, entity.BatchStatusEnUso, batches.byID["lote-1"].Status)
	assert.Empty(t, movs.rows)
}

func TestApplyOperation_VencidoConFecha_Retorna200(t *testing.T) {
	now := time.Now()
	exp := now.AddDate(0, 0, -1)
	batch := entity.NewBatch("lote-1", "item-1", "LECHE-01", decimal.NewFromInt(10), now, &exp, now)
	app, batches, movs := buildInventoryApp(t, batch)

	resp, err := app.Test(operationRequest(t, "lote-1", `{"operation_type":"vencido","reason":"revisión diaria"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.BatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.BatchStatusVencido, out.Status)
	// La cantidad restante se conserva para auditoría.
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(10)))

	assert.Equal(t, entity.BatchStatusVencido, batches.byID["lote-1"].Status)
	require.Len(t, movs.rows, 1)
	assert.Equal(t, entity.OperationVencido, movs.rows[0].Type)
	assert.True(t, movs.rows[0].Quantity.IsZero())
}

func TestApplyOperation_SalidaExcesiva_Retorna409(t *testing.T) {
	now := time.Now()
	batch := entity.NewBatch("lote-1", "item-1", "LECHE-01", decimal.NewFromInt(5), now, nil, now)
	app, _, _ := buildInventoryApp(t, batch)

	resp, err := app.Test(operationRequest(t, "lote-1", `{"operation_type":"salida","quantity":"9","reason":"venta"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Code)
}

func TestApplyOperation_LoteInexistente_Retorna404(t *testing.T) {
	now := time.Now()
	batch := entity.NewBatch("lote-1", "item-1", "LECHE-01", decimal.NewFromInt(5), now, nil, now)
	app, _, _ := buildInventoryApp(t, batch)

	resp, err := app.Test(operationRequest(t, "no-existe", `{"operation_type":"entrada","quantity":"1","reason":"compra"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
