// Package pdf implementa la generación del documento imprimible de la orden
// de compra que se envía al proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + RIF  │  N° Orden + Fecha + Moneda        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRADOR: Dirección / Tel / Email                         │
//	│  PROVEEDOR: Nombre + RIF + contacto + condiciones de pago   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Material | Unid | P.Unit | Desc% | Subtotal  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Base / Descuento / Venta / IVA / TOTAL            │
//	│  MONTO EN LETRAS                                            │
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

	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa procurement.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF genera el PDF de la orden y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.PurchaseOrder,
	company *entity.Company,
	supplier *entity.Supplier,
	items []procurement.OrderItemForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+order.Number, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(compradorRow(company))
	m.AddRows(proveedorRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))
	m.AddRows(montoEnLetrasRow(order))

	if order.Notes != "" {
		m.AddRows(notesRow(order.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + RIF (izq) y N° de orden + fecha + moneda (der).
func headerRow(order *entity.PurchaseOrder, company *entity.Company) core.Row {
	fecha := order.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RIF: "+company.RIF, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   Moneda: %s", fecha, order.Currency), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// compradorRow: datos de contacto de la empresa compradora.
func compradorRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// proveedorRow: datos del proveedor y condiciones de pago.
func proveedorRow(supplier *entity.Supplier) core.Row {
	condiciones := "Contado"
	if supplier.PaymentTermsDays > 0 {
		condiciones = fmt.Sprintf("Crédito %d días", supplier.PaymentTermsDays)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(supplier.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RIF: %s   |   Contacto: %s   |   Email: %s   |   Pago: %s",
				supplier.RIF,
				nonEmpty(supplier.ContactName, "—"),
				nonEmpty(supplier.Email, "—"),
				condiciones,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Material", 4, align.Left),
		h("Unid.", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Desc.%", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la orden. Las líneas exentas se marcan
// con (E) junto al nombre del material.
func tableItemRows(items []procurement.OrderItemForPDF) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.MaterialName
		if it.IsExempt {
			name += " (E)"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.MaterialUnit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.DiscountPercentage.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				it.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: desglose de totales alineado a la derecha.
func totalsRow(order *entity.PurchaseOrder) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(34).Add(
		col.New(3),
		col.New(4).Add(
			label("Base imponible:"),
			label("Descuento:"),
			label("Venta:"),
			label("IVA:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(order.BaseImponible.StringFixed(2)),
			value(order.MontoDescuento.StringFixed(2)),
			value(order.MontoVenta.StringFixed(2)),
			value(order.MontoIVA.StringFixed(2)),
			grandValue(order.Currency+" "+order.Total.StringFixed(2)),
		),
		col.New(1),
	)
}

// montoEnLetrasRow: el total escrito en letras, como lo exige el documento
// administrativo.
func montoEnLetrasRow(order *entity.PurchaseOrder) core.Row {
	letras := money.AmountInWords(order.Total, money.Currency(order.Currency))
	return row.New(10).Add(
		col.New(12).Add(
			text.New("SON: "+letras, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

// notesRow: observaciones de la orden.
func notesRow(notes string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Observaciones:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2,
			}),
			text.New(notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
