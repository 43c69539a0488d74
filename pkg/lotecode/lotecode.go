// Package lotecode genera los códigos legibles de lote del inventario.
//
// Un código combina una forma normalizada del nombre del artículo (sin
// tildes, mayúsculas, solo alfanuméricos) con un ULID, de modo que el código
// es único sin necesidad de reintentos y ordena cronológicamente:
//
//	"Fresa Ácida" -> "FRESA-ACIDA-01JD3A8ZKMV2Q4R9TGW8XH5N6P"
package lotecode

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxPrefixLen limita el prefijo legible del código.
const maxPrefixLen = 12

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// Generate devuelve un código de lote "PREFIJO-ULID" para el artículo dado.
// now fija el componente temporal del ULID.
func Generate(itemName string, now time.Time) string {
	mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), entropy)
	mu.Unlock()
	return Normalize(itemName) + "-" + id.String()
}

// Normalize reduce el nombre de un artículo a un prefijo de código: quita
// tildes (NFD + eliminación de marcas diacríticas), pasa a mayúsculas y
// reemplaza todo lo no alfanumérico por un guion.
func Normalize(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	flat, _, err := transform.String(t, name)
	if err != nil {
		flat = name
	}

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range strings.ToUpper(flat) {
		switch {
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == 'Ñ':
			b.WriteRune('N')
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	prefix := strings.TrimSuffix(b.String(), "-")
	if len(prefix) > maxPrefixLen {
		prefix = strings.TrimSuffix(prefix[:maxPrefixLen], "-")
	}
	if prefix == "" {
		prefix = "LOTE"
	}
	return prefix
}
