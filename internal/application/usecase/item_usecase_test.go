package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
)

type fakeItems struct {
	byID map[string]*entity.InventoryItem
}

func newFakeItems() *fakeItems {
	return &fakeItems{byID: map[string]*entity.InventoryItem{}}
}

func (f *fakeItems) Create(item *entity.InventoryItem) error {
	cp := *item
	f.byID[item.ID] = &cp
	return nil
}

func (f *fakeItems) GetByID(id string) (*entity.InventoryItem, error) {
	item, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItems) List(onlyActive bool, limit, offset int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, item := range f.byID {
		if onlyActive && !item.Active {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeItems) Update(item *entity.InventoryItem) error {
	if _, ok := f.byID[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	f.byID[item.ID] = &cp
	return nil
}

func (f *fakeItems) SetActive(id string, active bool) error {
	item, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.Active = active
	return nil
}

func (f *fakeItems) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeBatchIndex solo implementa las consultas que ItemUseCase necesita.
type fakeBatchIndex struct {
	stockByItem map[string]decimal.Decimal
	inUseByItem map[string]bool
}

func newFakeBatchIndex() *fakeBatchIndex {
	return &fakeBatchIndex{
		stockByItem: map[string]decimal.Decimal{},
		inUseByItem: map[string]bool{},
	}
}

func (f *fakeBatchIndex) Create(*entity.Batch) error                   { return nil }
func (f *fakeBatchIndex) GetByID(string) (*entity.Batch, error)        { return nil, nil }
func (f *fakeBatchIndex) GetForUpdate(string) (*entity.Batch, error)   { return nil, nil }
func (f *fakeBatchIndex) Update(*entity.Batch) error                   { return nil }
func (f *fakeBatchIndex) ListByItem(string) ([]*entity.Batch, error)   { return nil, nil }
func (f *fakeBatchIndex) ListExpiring(time.Time) ([]*entity.Batch, error) {
	return nil, nil
}

func (f *fakeBatchIndex) SumInUseByItem(itemID string) (decimal.Decimal, error) {
	return f.stockByItem[itemID], nil
}

func (f *fakeBatchIndex) HasInUseByItem(itemID string) (bool, error) {
	return f.inUseByItem[itemID], nil
}

func newItemFixture() (*ItemUseCase, *fakeItems, *fakeBatchIndex) {
	items := newFakeItems()
	batches := newFakeBatchIndex()
	return NewItemUseCase(items, batches), items, batches
}

func TestItemCreate(t *testing.T) {
	uc, _, _ := newItemFixture()

	resp, err := uc.Create(dto.CreateItemRequest{
		Name:     "Fresa Ácida",
		UnitType: entity.UnitKilogramos,
		Supplier: "Frutas SV",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresa Ácida", resp.Name)
	assert.True(t, resp.Active)
	assert.True(t, resp.CurrentStock.IsZero())
	assert.NotEmpty(t, resp.ID)
}

func TestItemCreateValidation(t *testing.T) {
	uc, _, _ := newItemFixture()

	_, err := uc.Create(dto.CreateItemRequest{Name: "  ", UnitType: entity.UnitLitros})
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = uc.Create(dto.CreateItemRequest{Name: "Leche", UnitType: "galones"})
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = uc.Create(dto.CreateItemRequest{
		Name:       "Leche",
		UnitType:   entity.UnitLitros,
		ExtraPrice: decimal.NewFromInt(-1),
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestItemStockDerivado(t *testing.T) {
	uc, _, batches := newItemFixture()

	resp, err := uc.Create(dto.CreateItemRequest{Name: "Leche", UnitType: entity.UnitLitros})
	require.NoError(t, err)

	batches.stockByItem[resp.ID] = decimal.NewFromInt(14)

	got, err := uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(14)))
}

func TestItemUpdateParcial(t *testing.T) {
	uc, _, _ := newItemFixture()

	created, err := uc.Create(dto.CreateItemRequest{
		Name:     "Leche",
		UnitType: entity.UnitLitros,
		Supplier: "Lácteos del Valle",
	})
	require.NoError(t, err)

	name := "Leche entera"
	updated, err := uc.Update(created.ID, dto.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", updated.Name)
	// Los campos no enviados se conservan.
	assert.Equal(t, "Lácteos del Valle", updated.Supplier)
	assert.Equal(t, entity.UnitLitros, updated.UnitType)

	bad := "toneladas"
	_, err = uc.Update(created.ID, dto.UpdateItemRequest{UnitType: &bad})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestItemToggleActive(t *testing.T) {
	uc, items, _ := newItemFixture()

	created, err := uc.Create(dto.CreateItemRequest{Name: "Leche", UnitType: entity.UnitLitros})
	require.NoError(t, err)

	require.NoError(t, uc.ToggleActive(created.ID, false))
	assert.False(t, items.byID[created.ID].Active)

	require.NoError(t, uc.ToggleActive(created.ID, true))
	assert.True(t, items.byID[created.ID].Active)

	assert.Equal(t, domain.ErrNotFound, uc.ToggleActive("no-existe", false))
}

func TestItemDeleteBloqueadoPorLoteEnUso(t *testing.T) {
	uc, items, batches := newItemFixture()

	created, err := uc.Create(dto.CreateItemRequest{Name: "Leche", UnitType: entity.UnitLitros})
	require.NoError(t, err)

	batches.inUseByItem[created.ID] = true
	assert.Equal(t, domain.ErrBatchInUse, uc.Delete(created.ID))
	assert.Contains(t, items.byID, created.ID)

	// Sin lotes "En uso" el borrado procede.
	batches.inUseByItem[created.ID] = false
	require.NoError(t, uc.Delete(created.ID))
	assert.NotContains(t, items.byID, created.ID)
}

func TestItemDeleteNotFound(t *testing.T) {
	uc, _, _ := newItemFixture()
	assert.Equal(t, domain.ErrNotFound, uc.Delete("no-existe"))
}
