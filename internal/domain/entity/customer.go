package entity

import "time"

// Customer representa un cliente registrado (flujo de registro móvil).
type Customer struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	BirthDate    *time.Time
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
