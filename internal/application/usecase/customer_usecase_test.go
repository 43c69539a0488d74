package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
)

type fakeCustomerStore struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{byID: map[string]*entity.Customer{}}
}

func (f *fakeCustomerStore) Create(customer *entity.Customer) error {
	cp := *customer
	f.byID[customer.ID] = &cp
	return nil
}

func (f *fakeCustomerStore) GetByID(id string) (*entity.Customer, error) {
	customer, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *customer
	return &cp, nil
}

func (f *fakeCustomerStore) FindByEmail(email string) (*entity.Customer, error) {
	for _, customer := range f.byID {
		if customer.Email == email {
			cp := *customer
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerStore) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, customer := range f.byID {
		cp := *customer
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCustomerStore) Update(customer *entity.Customer) error {
	if _, ok := f.byID[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *customer
	f.byID[customer.ID] = &cp
	return nil
}

func newCustomerFixture(t *testing.T) (*CustomerUseCase, *dto.CustomerResponse) {
	t.Helper()
	uc := NewCustomerUseCase(newFakeCustomerStore())
	created, err := uc.Register(dto.RegisterCustomerRequest{
		Name:     "María Pérez",
		Email:    "maria@example.com",
		Password: "contraseña-larga",
		Phone:    "7777-0001",
	})
	require.NoError(t, err)
	return uc, created
}

func TestCustomerRegisterEmailDuplicado(t *testing.T) {
	uc, _ := newCustomerFixture(t)

	_, err := uc.Register(dto.RegisterCustomerRequest{
		Name:     "Otra María",
		Email:    "maria@example.com",
		Password: "otra-contraseña",
	})
	assert.Equal(t, domain.ErrEmailAlreadyExists, err)
}

func TestCustomerUpdateParcial(t *testing.T) {
	uc, created := newCustomerFixture(t)

	phone := "7777-0002"
	birth := time.Date(1998, time.March, 9, 0, 0, 0, 0, time.UTC)
	updated, err := uc.Update(created.ID, dto.UpdateCustomerRequest{
		Phone:     &phone,
		BirthDate: &birth,
	})
	require.NoError(t, err)
	assert.Equal(t, "7777-0002", updated.Phone)
	require.NotNil(t, updated.BirthDate)
	assert.True(t, birth.Equal(*updated.BirthDate))
	// Los campos no enviados se conservan.
	assert.Equal(t, "María Pérez", updated.Name)
	assert.Equal(t, "maria@example.com", updated.Email)
	assert.True(t, updated.Active)
}

func TestCustomerUpdateBajaLogica(t *testing.T) {
	uc, created := newCustomerFixture(t)

	inactive := false
	updated, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestCustomerUpdateValidaNombre(t *testing.T) {
	uc, created := newCustomerFixture(t)

	blank := "   "
	_, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Name: &blank})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestCustomerUpdateNoEncontrado(t *testing.T) {
	uc, _ := newCustomerFixture(t)

	name := "Nadie"
	updated, err := uc.Update("no-existe", dto.UpdateCustomerRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
