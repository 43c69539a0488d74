package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newBatch(t *testing.T, qty string, expiration *time.Time) *entity.Batch {
	t.Helper()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return entity.NewBatch("lote-1", "item-1", "LECHE-01JD3A8ZKM", dec(qty), now, expiration, now)
}

func TestNewBatch_EstadoInicialEnUso(t *testing.T) {
	b := newBatch(t, "10", nil)
	assert.Equal(t, entity.BatchStatusEnUso, b.Status)
	assert.True(t, b.InUse())
	assert.True(t, b.LostQuantity.IsZero())
}

// Escenario de la leche: crear con 10, salida de 4, sobre-retiro de 10 falla
// y deja la cantidad intacta.
func TestBatch_EscenarioLeche(t *testing.T) {
	now := time.Now()
	b := newBatch(t, "10", nil)

	require.NoError(t, b.ApplySalida(dec("4"), now))
	assert.True(t, b.Quantity.Equal(dec("6")), "cantidad: %s", b.Quantity)
	assert.Equal(t, entity.BatchStatusEnUso, b.Status)

	err := b.ApplySalida(dec("10"), now)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, b.Quantity.Equal(dec("6")), "un sobre-retiro no debe mutar la cantidad")
}

func TestBatch_SalidaTotalAgota(t *testing.T) {
	b := newBatch(t, "5", nil)
	require.NoError(t, b.ApplySalida(dec("5"), time.Now()))
	assert.True(t, b.Quantity.IsZero())
	assert.Equal(t, entity.BatchStatusAgotado, b.Status)
	assert.False(t, b.InUse())
}

func TestBatch_EntradaRevierteAgotado(t *testing.T) {
	now := time.Now()
	b := newBatch(t, "5", nil)
	require.NoError(t, b.ApplySalida(dec("5"), now))
	require.Equal(t, entity.BatchStatusAgotado, b.Status)

	require.NoError(t, b.ApplyEntrada(dec("3"), now))
	assert.True(t, b.Quantity.Equal(dec("3")))
	assert.Equal(t, entity.BatchStatusEnUso, b.Status)
}

func TestBatch_EntradaCantidadInvalida(t *testing.T) {
	b := newBatch(t, "5", nil)
	assert.ErrorIs(t, b.ApplyEntrada(dec("0"), time.Now()), domain.ErrInvalidInput)
	assert.ErrorIs(t, b.ApplyEntrada(dec("-2"), time.Now()), domain.ErrInvalidInput)
	assert.True(t, b.Quantity.Equal(dec("5")))
}

func TestBatch_DanioAcumulaPerdida(t *testing.T) {
	now := time.Now()
	b := newBatch(t, "8", nil)

	require.NoError(t, b.ApplyDanio(dec("3"), now))
	assert.True(t, b.Quantity.Equal(dec("5")))
	assert.True(t, b.LostQuantity.Equal(dec("3")))
	assert.Equal(t, entity.BatchStatusEnUso, b.Status, "daño parcial no cambia el estado")

	// Dañar todo lo restante deja el lote "Dañado", no "Agotado".
	require.NoError(t, b.ApplyDanio(dec("5"), now))
	assert.True(t, b.Quantity.IsZero())
	assert.True(t, b.LostQuantity.Equal(dec("8")))
	assert.Equal(t, entity.BatchStatusDanado, b.Status)
}

func TestBatch_DanioExcesivoFalla(t *testing.T) {
	b := newBatch(t, "2", nil)
	err := b.ApplyDanio(dec("3"), time.Now())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, b.Quantity.Equal(dec("2")))
	assert.True(t, b.LostQuantity.IsZero())
}

func TestBatch_VencidoRequiereFecha(t *testing.T) {
	b := newBatch(t, "10", nil)
	err := b.ApplyVencido(time.Now())
	assert.ErrorIs(t, err, domain.ErrMissingExpiration)
	assert.Equal(t, entity.BatchStatusEnUso, b.Status)
}

func TestBatch_VencidoConservaCantidad(t *testing.T) {
	exp := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	b := newBatch(t, "10", &exp)

	require.NoError(t, b.ApplyVencido(time.Now()))
	assert.Equal(t, entity.BatchStatusVencido, b.Status)
	assert.True(t, b.Quantity.Equal(dec("10")), "la cantidad se conserva para auditoría")
	assert.False(t, b.InUse(), "un lote vencido no cuenta como stock utilizable")
}

func TestBatch_VencidoEsTerminal(t *testing.T) {
	now := time.Now()
	exp := now.AddDate(0, 1, 0)
	b := newBatch(t, "10", &exp)
	require.NoError(t, b.ApplyVencido(now))

	// Una entrada posterior suma cantidad pero no revive el lote.
	require.NoError(t, b.ApplyEntrada(dec("2"), now))
	assert.Equal(t, entity.BatchStatusVencido, b.Status)

	// Una salida que llega a cero tampoco lo marca "Agotado".
	require.NoError(t, b.ApplySalida(dec("12"), now))
	assert.True(t, b.Quantity.IsZero())
	assert.Equal(t, entity.BatchStatusVencido, b.Status)
}

func TestBatch_CantidadNuncaNegativa(t *testing.T) {
	now := time.Now()
	b := newBatch(t, "10", nil)
	ops := []func() error{
		func() error { return b.ApplySalida(dec("4"), now) },
		func() error { return b.ApplySalida(dec("7"), now) }, // debe fallar
		func() error { return b.ApplyDanio(dec("6"), now) },
		func() error { return b.ApplyDanio(dec("1"), now) }, // debe fallar
		func() error { return b.ApplyEntrada(dec("2"), now) },
	}
	for _, op := range ops {
		_ = op()
		assert.False(t, b.Quantity.IsNegative(), "cantidad negativa tras una secuencia de operaciones")
	}
}

func TestBatch_ExpiresWithin(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	in5 := now.AddDate(0, 0, 5)
	in30 := now.AddDate(0, 0, 30)

	cerca := newBatch(t, "10", &in5)
	lejos := newBatch(t, "10", &in30)
	sinFecha := newBatch(t, "10", nil)

	assert.True(t, cerca.ExpiresWithin(7, now))
	assert.False(t, lejos.ExpiresWithin(7, now))
	assert.False(t, sinFecha.ExpiresWithin(7, now))

	require.NoError(t, cerca.ApplyVencido(now))
	assert.False(t, cerca.ExpiresWithin(7, now), "un lote ya vencido no se reporta como por vencer")
}
