package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos de inventario. El stock que
// exponen las respuestas se deriva de los lotes "En uso" en cada lectura.
type ItemUseCase struct {
	itemRepo  repository.InventoryItemRepository
	batchRepo repository.BatchRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.InventoryItemRepository, batchRepo repository.BatchRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, batchRepo: batchRepo}
}

// Create crea un artículo de inventario activo y sin lotes.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" || !entity.ValidUnit(in.UnitType) {
		return nil, domain.ErrInvalidInput
	}
	if in.ExtraPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		CategoryID:  in.CategoryID,
		Supplier:    in.Supplier,
		UnitType:    in.UnitType,
		ExtraPrice:  in.ExtraPrice,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// GetByID obtiene un artículo por ID con su stock derivado.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item)
}

// Update actualiza un artículo. Campos nil del request no se tocan.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.UnitType != nil {
		if !entity.ValidUnit(*in.UnitType) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitType = *in.UnitType
	}
	if in.ExtraPrice != nil {
		if in.ExtraPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.ExtraPrice = *in.ExtraPrice
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// ToggleActive activa o desactiva el artículo. Desactivar no cascadea a los
// lotes: siguen siendo legibles pero no operables.
func (uc *ItemUseCase) ToggleActive(id string, active bool) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.SetActive(id, active)
}

// Delete elimina el artículo. Falla con ErrBatchInUse mientras exista algún
// lote "En uso".
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.batchRepo.HasInUseByItem(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrBatchInUse
	}
	return uc.itemRepo.Delete(id)
}

// List lista artículos con paginación y stock derivado.
func (uc *ItemUseCase) List(onlyActive bool, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		resp, err := uc.toResponse(it)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ItemUseCase) toResponse(item *entity.InventoryItem) (*dto.ItemResponse, error) {
	stock, err := uc.batchRepo.SumInUseByItem(item.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		CategoryID:   item.CategoryID,
		Supplier:     item.Supplier,
		UnitType:     item.UnitType,
		ExtraPrice:   item.ExtraPrice,
		Description:  item.Description,
		Active:       item.Active,
		CurrentStock: stock,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}, nil
}
