package entity

import "time"

// Roles válidos dentro de la aplicación.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
	RoleCliente  = "cliente"
)

// Employee representa un empleado de la heladería. Puede iniciar sesión y
// figura como actor en los movimientos de inventario que registra.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Phone        string
	DUI          string // documento único de identidad
	HireDate     time.Time
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
