package repository

import "github.com/kmorales/heladeria-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	FindByEmail(email string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
