package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
	"github.com/kmorales/heladeria-api/internal/domain/repository"
	"github.com/kmorales/heladeria-api/pkg/jwt"
)

// AdminID subject fijo del administrador (no vive en la base de datos).
const AdminID = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminConfig credenciales del administrador sembradas por entorno.
type AdminConfig struct {
	Email    string
	Password string
}

// AuthUseCase caso de uso de autenticación. Un mismo login resuelve los tres
// roles: admin (credenciales de entorno), empleado y cliente (tablas propias,
// hash bcrypt). No hay refresh: al expirar el token se vuelve a iniciar sesión.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	customerRepo repository.CustomerRepository
	admin        AdminConfig
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	employeeRepo repository.EmployeeRepository,
	customerRepo repository.CustomerRepository,
	admin AdminConfig,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		employeeRepo: employeeRepo,
		customerRepo: customerRepo,
		admin:        admin,
		jwtCfg:       jwtCfg,
	}
}

// Login verifica credenciales en orden admin -> empleado -> cliente, genera
// el JWT con el rol resuelto y retorna token + usuario. Credenciales malas
// devuelven siempre ErrUnauthorized, sin revelar cuál existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if uc.admin.Email != "" && in.Email == uc.admin.Email {
		if subtle.ConstantTimeCompare([]byte(in.Password), []byte(uc.admin.Password)) != 1 {
			return nil, domain.ErrUnauthorized
		}
		return uc.issue(AdminID, "Administrador", in.Email, entity.RoleAdmin)
	}

	employee, err := uc.employeeRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if employee != nil {
		if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		if !employee.Active {
			return nil, domain.ErrForbidden
		}
		return uc.issue(employee.ID, employee.Name, employee.Email, entity.RoleEmpleado)
	}

	customer, err := uc.customerRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		if !customer.Active {
			return nil, domain.ErrForbidden
		}
		return uc.issue(customer.ID, customer.Name, customer.Email, entity.RoleCliente)
	}

	return nil, domain.ErrUnauthorized
}

func (uc *AuthUseCase) issue(userID, name, email, role string) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, name, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.SessionUser{ID: userID, Name: name, Email: email, Role: role},
	}, nil
}
