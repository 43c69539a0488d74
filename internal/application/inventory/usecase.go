package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
	"github.com/kmorales/heladeria-api/pkg/lotecode"
)

// DefaultInitialReason motivo del movimiento inicial cuando no se indica uno.
const DefaultInitialReason = "Lote inicial"

// Actor identifica al usuario que ejecuta una operación (atribución en movimientos).
type Actor struct {
	ID   string
	Name string
}

// BatchUseCase gestiona el ciclo de vida de lotes y las operaciones de stock
// (entrada, salida, daño, vencido) de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type BatchUseCase struct {
	txRunner  TxRunner
	itemRepo  repository.InventoryItemRepository
	batchRepo repository.BatchRepository
	movRepo   repository.MovementRepository
	loc       *time.Location // zona horaria local para fechas de compra por defecto
}

// NewBatchUseCase construye el caso de uso. loc nil cae en UTC.
func NewBatchUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	batchRepo repository.BatchRepository,
	movRepo repository.MovementRepository,
	loc *time.Location,
) *BatchUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &BatchUseCase{
		txRunner:  txRunner,
		itemRepo:  itemRepo,
		batchRepo: batchRepo,
		movRepo:   movRepo,
		loc:       loc,
	}
}

// CreateBatch crea un lote bajo un artículo activo, genera su código y
// registra el movimiento inicial de entrada por la cantidad completa.
// Lote y movimiento se insertan en la misma transacción.
func (uc *BatchUseCase) CreateBatch(ctx context.Context, itemID string, actor Actor, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !item.Active {
		return nil, domain.ErrItemInactive
	}

	now := time.Now()
	purchaseDate := localDate(now, uc.loc)
	if in.PurchaseDate != nil {
		purchaseDate = *in.PurchaseDate
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = DefaultInitialReason
	}

	batch := entity.NewBatch(
		uuid.New().String(),
		item.ID,
		lotecode.Generate(item.Name, now),
		in.Quantity,
		purchaseDate,
		in.ExpirationDate,
		now,
	)
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		BatchID:   batch.ID,
		Type:      entity.OperationEntrada,
		Quantity:  in.Quantity,
		Reason:    reason,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		movRepo repository.MovementRepository,
		_ repository.InventoryItemRepository,
	) error {
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// ApplyOperation aplica una operación a un lote dentro de una transacción.
// La fila del lote se bloquea (SELECT FOR UPDATE) para que dos operaciones
// concurrentes sobre el mismo lote se serialicen en vez de pisarse.
func (uc *BatchUseCase) ApplyOperation(ctx context.Context, batchID string, actor Actor, in dto.OperationRequest) (*dto.BatchResponse, error) {
	if !entity.ValidOperation(in.OperationType) {
		return nil, domain.ErrInvalidInput
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OperationType != entity.OperationVencido && in.Quantity == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var snapshot *dto.BatchResponse

	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		movRepo repository.MovementRepository,
		itemRepo repository.InventoryItemRepository,
	) error {
		batch, err := batchRepo.GetForUpdate(batchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		item, err := itemRepo.GetByID(batch.InventoryItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if !item.Active {
			return domain.ErrItemInactive
		}

		// Delta del movimiento: positivo entrada, negativo salida/daño, cero vencido.
		var delta decimal.Decimal
		switch in.OperationType {
		case entity.OperationEntrada:
			if err := batch.ApplyEntrada(*in.Quantity, now); err != nil {
				return err
			}
			delta = *in.Quantity
		case entity.OperationSalida:
			if err := batch.ApplySalida(*in.Quantity, now); err != nil {
				return err
			}
			delta = in.Quantity.Neg()
		case entity.OperationDanio:
			if err := batch.ApplyDanio(*in.Quantity, now); err != nil {
				return err
			}
			delta = in.Quantity.Neg()
		case entity.OperationVencido:
			if err := batch.ApplyVencido(now); err != nil {
				return err
			}
			delta = decimal.Zero
		}

		if err := batchRepo.Update(batch); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:        uuid.New().String(),
			BatchID:   batch.ID,
			Type:      in.OperationType,
			Quantity:  delta,
			Reason:    reason,
			ActorID:   actor.ID,
			ActorName: actor.Name,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		snapshot = toBatchResponse(batch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListMovements devuelve el historial de movimientos de un lote en orden cronológico.
func (uc *BatchUseCase) ListMovements(ctx context.Context, batchID string) ([]dto.MovementResponse, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			BatchID:   m.BatchID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			ActorID:   m.ActorID,
			ActorName: m.ActorName,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// ListByItem devuelve los lotes de un artículo.
func (uc *BatchUseCase) ListByItem(ctx context.Context, itemID string) ([]dto.BatchResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	batches, err := uc.batchRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, *toBatchResponse(b))
	}
	return out, nil
}

// CurrentStock devuelve el stock actual del artículo: suma de cantidades de
// sus lotes "En uso", recalculada en cada lectura.
func (uc *BatchUseCase) CurrentStock(ctx context.Context, itemID string) (*dto.StockResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.batchRepo.SumInUseByItem(itemID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{InventoryItemID: itemID, CurrentStock: total}, nil
}

// ExpiringSoon lista lotes "En uso" que vencen dentro de los próximos days días.
func (uc *BatchUseCase) ExpiringSoon(ctx context.Context, days int) ([]dto.BatchResponse, error) {
	if days <= 0 {
		days = 7
	}
	until := time.Now().In(uc.loc).AddDate(0, 0, days)
	batches, err := uc.batchRepo.ListExpiring(until)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, *toBatchResponse(b))
	}
	return out, nil
}

// localDate trunca un instante a la fecha en la zona horaria local del negocio.
func localDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func toBatchResponse(b *entity.Batch) *dto.BatchResponse {
	if b == nil {
		return nil
	}
	return &dto.BatchResponse{
		ID:             b.ID,
		InventoryItem:  b.InventoryItemID,
		Code:           b.Code,
		Quantity:       b.Quantity,
		LostQuantity:   b.LostQuantity,
		PurchaseDate:   b.PurchaseDate,
		ExpirationDate: b.ExpirationDate,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
