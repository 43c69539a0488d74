package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	appinv "github.com/kmorales/heladeria-api/internal/application/inventory"
	"github.com/kmorales/heladeria-api/internal/application/reports"
	"github.com/kmorales/heladeria-api/internal/application/usecase"
	"github.com/kmorales/heladeria-api/internal/domain"
)

// InventoryHandler maneja artículos, lotes, operaciones de stock y reportes.
type InventoryHandler struct {
	itemUC   *usecase.ItemUseCase
	batchUC  *appinv.BatchUseCase
	kardexUC *reports.KardexUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(itemUC *usecase.ItemUseCase, batchUC *appinv.BatchUseCase, kardexUC *reports.KardexUseCase) *InventoryHandler {
	return &InventoryHandler{itemUC: itemUC, batchUC: batchUC, kardexUC: kardexUC}
}

func actorFrom(c *fiber.Ctx) appinv.Actor {
	return appinv.Actor{ID: GetUserID(c), Name: GetUserName(c)}
}

// inventoryError traduce errores de dominio a respuestas HTTP.
func inventoryError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrMissingExpiration:
		// Precondición de entrada, no conflicto de estado: vencido exige
		// que el lote tenga fecha de vencimiento.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EXPIRATION", Message: err.Error()})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case domain.ErrItemInactive:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ITEM_INACTIVE", Message: err.Error()})
	case domain.ErrBatchInUse:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BATCH_IN_USE", Message: err.Error()})
	case domain.ErrConflict, domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// CreateItem godoc
// @Summary      Crear artículo de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.itemUC.Create(in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListItems godoc
// @Summary      Listar artículos de inventario
// @Tags         inventory
// @Produce      json
// @Param        limit        query  int   false  "límite (default 20)"
// @Param        offset       query  int   false  "offset"
// @Param        only_active  query  bool  false  "solo activos"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	onlyActive := c.QueryBool("only_active", false)
	out, err := h.itemUC.List(onlyActive, page.Limit, page.Offset)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(out)
}

// GetItem godoc
// @Summary      Obtener artículo por ID
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.itemUC.GetByID(c.Params("id"))
	if err != nil {
		return inventoryError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(item)
}

// UpdateItem godoc
// @Summary      Actualizar artículo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.itemUC.Update(c.Params("id"), in)
	if err != nil {
		return inventoryError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(item)
}

// ToggleStatus godoc
// @Summary      Activar o desactivar artículo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del artículo"
// @Param        body  body  dto.ToggleStatusRequest  true  "is_active"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/toggleStatus [put]
func (h *InventoryHandler) ToggleStatus(c *fiber.Ctx) error {
	var in dto.ToggleStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.itemUC.ToggleActive(c.Params("id"), in.IsActive); err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(fiber.Map{"is_active": in.IsActive})
}

// DeleteItem godoc
// @Summary      Eliminar artículo (sin lotes "En uso")
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.itemUC.Delete(c.Params("id")); err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// CreateBatch godoc
// @Summary      Crear lote bajo un artículo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.CreateBatchRequest  true  "cantidad, fechas, motivo"
// @Success      201  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/batch [post]
func (h *InventoryHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.batchUC.CreateBatch(c.UserContext(), c.Params("id"), actorFrom(c), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// ListBatches godoc
// @Summary      Listar lotes de un artículo
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {array}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/batches [get]
func (h *InventoryHandler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.batchUC.ListByItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(batches)
}

// ApplyOperation godoc
// @Summary      Aplicar operación a un lote (entrada, salida, daño, vencido)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        batchId  path  string                true  "ID del lote"
// @Param        body     body  dto.OperationRequest  true  "operación"
// @Success      200  {object}  dto.BatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/batch/{batchId}/operation [put]
func (h *InventoryHandler) ApplyOperation(c *fiber.Ctx) error {
	var in dto.OperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.batchUC.ApplyOperation(c.UserContext(), c.Params("batchId"), actorFrom(c), in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(batch)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un lote
// @Tags         inventory
// @Produce      json
// @Param        batchId  path  string  true  "ID del lote"
// @Success      200  {array}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/batch/{batchId}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movs, err := h.batchUC.ListMovements(c.UserContext(), c.Params("batchId"))
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(movs)
}

// GetStock godoc
// @Summary      Stock actual de un artículo (lotes "En uso")
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.batchUC.CurrentStock(c.UserContext(), c.Params("id"))
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(stock)
}

// ListExpiring godoc
// @Summary      Lotes "En uso" próximos a vencer
// @Tags         inventory
// @Produce      json
// @Param        days  query  int  false  "ventana en días (default 7)"
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/inventory/expiring [get]
func (h *InventoryHandler) ListExpiring(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	batches, err := h.batchUC.ExpiringSoon(c.UserContext(), days)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(batches)
}

// KardexPDF godoc
// @Summary      Kardex del lote en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Param        batchId  path  string  true  "ID del lote"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/batch/{batchId}/kardex [get]
func (h *InventoryHandler) KardexPDF(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	pdfBytes, err := h.kardexUC.GenerateBatchKardex(c.UserContext(), batchID)
	if err != nil {
		return inventoryError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="kardex-%s.pdf"`, batchID))
	return c.Send(pdfBytes)
}
