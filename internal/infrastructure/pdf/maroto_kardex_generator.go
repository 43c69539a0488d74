// Package pdf implementa la generación del kardex de lote en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Artículo + Código de lote  │  Estado + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS DEL LOTE: compra / vencimiento / cantidad / pérdidas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Operación | Cantidad | Motivo | Usuario     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales por tipo de operación                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/kmorales/heladeria-api/internal/application/reports"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 136, Green: 14, Blue: 79}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 183, Green: 28, Blue: 28}
	colorGreen   = &props.Color{Red: 27, Green: 94, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoKardexGenerator implementa reports.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

// GenerateKardexPDF genera el PDF y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(_ context.Context, data *reports.KardexData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de lote "+data.Batch.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(batchInfoRow(data.Batch, data.Item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range movementRows(data.Movements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(data.Movements))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Generado el "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 7, Color: colorGray, Align: align.Right, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: artículo + código del lote (izq) y estado + stock (der).
func headerRow(data *reports.KardexData) core.Row {
	statusColor := colorGreen
	switch data.Batch.Status {
	case entity.BatchStatusVencido, entity.BatchStatusDanado:
		statusColor = colorRed
	case entity.BatchStatusAgotado:
		statusColor = colorGray
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Lote: "+data.Batch.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KARDEX DE LOTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.Batch.Status, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: statusColor, Top: 7,
			}),
			text.New(fmt.Sprintf("Stock: %s %s",
				data.Batch.Quantity.String(), data.Item.UnitType,
			), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

// batchInfoRow: fechas y pérdidas acumuladas del lote.
func batchInfoRow(batch *entity.Batch, item *entity.InventoryItem) core.Row {
	vencimiento := "—"
	if batch.ExpirationDate != nil {
		vencimiento = batch.ExpirationDate.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL LOTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Compra: %s   |   Vencimiento: %s   |   Pérdidas: %s %s",
				batch.PurchaseDate.Format("02/01/2006"),
				vencimiento,
				batch.LostQuantity.String(),
				item.UnitType,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Operación", 2, align.Center),
		h("Cantidad", 2, align.Right),
		h("Motivo", 4, align.Left),
		h("Usuario", 2, align.Left),
	)
}

// movementRows: una fila por movimiento, en orden cronológico.
func movementRows(movements []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		qtyColor := colorGreen
		if mv.Quantity.IsNegative() {
			qtyColor = colorRed
		} else if mv.Quantity.IsZero() {
			qtyColor = colorGray
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mv.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mv.Type,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				mv.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: qtyColor},
			)),
			col.New(4).Add(text.New(
				mv.Reason,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mv.ActorName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// summaryRow: totales acumulados por tipo de operación.
func summaryRow(movements []*entity.Movement) core.Row {
	var entradas, salidas, danios decimal.Decimal
	for _, mv := range movements {
		switch mv.Type {
		case entity.OperationEntrada:
			entradas = entradas.Add(mv.Quantity)
		case entity.OperationSalida:
			salidas = salidas.Add(mv.Quantity.Neg())
		case entity.OperationDanio:
			danios = danios.Add(mv.Quantity.Neg())
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Color: c})
	}

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Total entradas:"),
			label("Total salidas:"),
			label("Total daños:"),
		),
		col.New(4).Add(
			value(entradas.String(), colorGreen),
			value(salidas.String(), colorRed),
			value(danios.String(), colorRed),
		),
	)
}
