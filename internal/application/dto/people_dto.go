package dto

import "time"

// CreateEmployeeRequest body para POST /api/employees (solo admin).
type CreateEmployeeRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Phone    string     `json:"phone"`
	DUI      string     `json:"dui"`
	HireDate *time.Time `json:"hire_date,omitempty"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id.
type UpdateEmployeeRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// EmployeeResponse empleado expuesto por la API (sin hash de password).
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	DUI       string    `json:"dui"`
	HireDate  time.Time `json:"hire_date"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterCustomerRequest body para POST /api/customers/register (público,
// flujo de registro móvil).
type RegisterCustomerRequest struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id (staff).
// El email es la credencial de login y no se edita por esta vía.
type UpdateCustomerRequest struct {
	Name      *string    `json:"name,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Active    *bool      `json:"active,omitempty"`
}

// CustomerResponse cliente expuesto por la API.
type CustomerResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
