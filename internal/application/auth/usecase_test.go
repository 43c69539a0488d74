package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kmorales/heladeria-api/internal/application/auth"
	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	pkgjwt "github.com/kmorales/heladeria-api/pkg/jwt"
)

type fakeEmployees struct{ byEmail map[string]*entity.Employee }

func (r *fakeEmployees) Create(e *entity.Employee) error { r.byEmail[e.Email] = e; return nil }
func (r *fakeEmployees) GetByID(string) (*entity.Employee, error) { return nil, nil }
func (r *fakeEmployees) FindByEmail(email string) (*entity.Employee, error) {
	return r.byEmail[email], nil
}
func (r *fakeEmployees) List(int, int) ([]*entity.Employee, error) { return nil, nil }
func (r *fakeEmployees) Update(*entity.Employee) error             { return nil }
func (r *fakeEmployees) Delete(string) error                       { return nil }

type fakeCustomers struct{ byEmail map[string]*entity.Customer }

func (r *fakeCustomers) Create(c *entity.Customer) error { r.byEmail[c.Email] = c; return nil }
func (r *fakeCustomers) GetByID(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomers) FindByEmail(email string) (*entity.Customer, error) {
	return r.byEmail[email], nil
}
func (r *fakeCustomers) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomers) Update(*entity.Customer) error             { return nil }

const testSecret = "secret-para-tests-de-auth"

func hash(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeEmployees, *fakeCustomers) {
	t.Helper()
	employees := &fakeEmployees{byEmail: make(map[string]*entity.Employee)}
	customers := &fakeCustomers{byEmail: make(map[string]*entity.Customer)}

	require.NoError(t, employees.Create(&entity.Employee{
		ID: "emp-1", Name: "Karla", Email: "karla@heladeria.sv",
		PasswordHash: hash(t, "clave-karla"), Active: true, HireDate: time.Now(),
	}))
	require.NoError(t, customers.Create(&entity.Customer{
		ID: "cli-1", Name: "Mario", Email: "mario@correo.sv",
		PasswordHash: hash(t, "clave-mario"), Active: true,
	}))

	uc := auth.NewAuthUseCase(employees, customers,
		auth.AdminConfig{Email: "admin@heladeria.sv", Password: "clave-admin"},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "heladeria-test"},
	)
	return uc, employees, customers
}

func TestLogin_AdminDesdeConfig(t *testing.T) {
	uc, _, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@heladeria.sv", Password: "clave-admin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	_, _, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role, "el rol debe viajar en el token")
}

func TestLogin_EmpleadoYCliente(t *testing.T) {
	uc, _, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "karla@heladeria.sv", Password: "clave-karla"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmpleado, out.User.Role)
	assert.Equal(t, "Karla", out.User.Name)

	out, err = uc.Login(dto.LoginRequest{Email: "mario@correo.sv", Password: "clave-mario"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.User.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newAuthUC(t)

	casos := []dto.LoginRequest{
		{Email: "admin@heladeria.sv", Password: "incorrecta"},
		{Email: "karla@heladeria.sv", Password: "incorrecta"},
		{Email: "mario@correo.sv", Password: "incorrecta"},
		{Email: "nadie@correo.sv", Password: "lo-que-sea"},
	}
	for _, in := range casos {
		_, err := uc.Login(in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "email: %s", in.Email)
	}
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, employees, _ := newAuthUC(t)
	employees.byEmail["karla@heladeria.sv"].Active = false

	_, err := uc.Login(dto.LoginRequest{Email: "karla@heladeria.sv", Password: "clave-karla"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _, _ := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
