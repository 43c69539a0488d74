// Package reports arma el kardex de un lote: la historia completa de sus
// movimientos lista para exportar en PDF.
package reports

import (
	"context"
	"time"

	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
)

// KardexData agrupa todo lo que el generador necesita para renderizar.
type KardexData struct {
	Item        *entity.InventoryItem
	Batch       *entity.Batch
	Movements   []*entity.Movement
	GeneratedAt time.Time
}

// KardexPDFGenerator es el puerto de salida hacia el renderizador de PDF.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, data *KardexData) ([]byte, error)
}

// KardexUseCase produce el reporte kardex de un lote.
type KardexUseCase struct {
	itemRepo  repository.InventoryItemRepository
	batchRepo repository.BatchRepository
	movRepo   repository.MovementRepository
	generator KardexPDFGenerator
	loc       *time.Location
}

// NewKardexUseCase construye el caso de uso. loc nil cae a UTC.
func NewKardexUseCase(
	itemRepo repository.InventoryItemRepository,
	batchRepo repository.BatchRepository,
	movRepo repository.MovementRepository,
	generator KardexPDFGenerator,
	loc *time.Location,
) *KardexUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &KardexUseCase{
		itemRepo:  itemRepo,
		batchRepo: batchRepo,
		movRepo:   movRepo,
		generator: generator,
		loc:       loc,
	}
}

// GenerateBatchKardex genera el PDF del kardex del lote indicado.
func (uc *KardexUseCase) GenerateBatchKardex(ctx context.Context, batchID string) ([]byte, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(batch.InventoryItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateKardexPDF(ctx, &KardexData{
		Item:        item,
		Batch:       batch,
		Movements:   movements,
		GeneratedAt: time.Now().In(uc.loc),
	})
}
