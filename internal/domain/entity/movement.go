package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación sobre un lote.
const (
	OperationEntrada = "entrada"
	OperationSalida  = "salida"
	OperationDanio   = "daño"
	OperationVencido = "vencido"
)

// ValidOperation indica si el tipo pertenece al conjunto cerrado.
func ValidOperation(op string) bool {
	switch op {
	case OperationEntrada, OperationSalida, OperationDanio, OperationVencido:
		return true
	}
	return false
}

// Movement es el registro inmutable de una operación sobre un lote: se crea
// exactamente una vez por operación y nunca se actualiza ni se borra.
// Quantity es el delta aplicado: positivo para entrada, negativo para
// salida/daño, cero solo para vencido.
type Movement struct {
	ID        string
	BatchID   string
	Type      string // entrada, salida, daño, vencido
	Quantity  decimal.Decimal
	Reason    string
	ActorID   string // usuario que ejecutó la operación
	ActorName string
	CreatedAt time.Time
}
