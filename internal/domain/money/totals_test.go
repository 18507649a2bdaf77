package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de totales.
//
// La política de redondeo es mitad-hacia-afuera a 2 decimales, aplicada una
// sola vez sobre los agregados (no por línea). Si alguien cambia el orden de
// las operaciones, el redondeo o los defaults, estos vectores fallan de
// inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// Vector de referencia: una línea con descuento, venta e IVA.
//
//	cantidad=10, precio=5, IVA=16%, descuento=10%, venta=5%
//	valor=50 → descuento=5 → subtotal=45 → venta=2.25 → IVA=7.20 → total=54.45
func TestCalculateTotals_VectorCompleto(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{{
		Quantity:           dec("10"),
		UnitPrice:          dec("5"),
		TaxRate:            decPtr("0.16"),
		IsExempt:           false,
		DiscountPercentage: decPtr("10"),
		SalesPercentage:    decPtr("5"),
	}})

	assert.True(t, dec("45.00").Equal(got.BaseImponible), "base imponible: %s", got.BaseImponible)
	assert.True(t, dec("5.00").Equal(got.MontoDescuento), "descuento: %s", got.MontoDescuento)
	assert.True(t, dec("2.25").Equal(got.MontoVenta), "venta: %s", got.MontoVenta)
	assert.True(t, dec("7.20").Equal(got.MontoIVA), "IVA: %s", got.MontoIVA)
	assert.True(t, dec("54.45").Equal(got.Total), "total: %s", got.Total)
}

// Vector de referencia: línea exenta + línea gravada.
func TestCalculateTotals_ExentaMasGravada(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{
		{Quantity: dec("1"), UnitPrice: dec("100"), IsExempt: true},
		{Quantity: dec("2"), UnitPrice: dec("50"), TaxRate: decPtr("0.16")},
	})

	assert.True(t, dec("200.00").Equal(got.BaseImponible))
	assert.True(t, dec("16.00").Equal(got.MontoIVA))
	assert.True(t, dec("216.00").Equal(got.Total))
}

// Secuencia vacía: todos los campos en 0.00.
func TestCalculateTotals_SinLineas(t *testing.T) {
	got := money.CalculateTotals(nil)

	assert.True(t, got.BaseImponible.IsZero())
	assert.True(t, got.MontoDescuento.IsZero())
	assert.True(t, got.MontoVenta.IsZero())
	assert.True(t, got.MontoIVA.IsZero())
	assert.True(t, got.Total.IsZero())
}

// Línea exenta: IVA en cero sin importar la tasa declarada.
func TestCalculateTotals_ExentaIgnoraTasa(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{{
		Quantity:  dec("3"),
		UnitPrice: dec("7.50"),
		TaxRate:   decPtr("0.16"),
		IsExempt:  true,
	}})

	assert.True(t, got.MontoIVA.IsZero(), "línea exenta no debe generar IVA")
	assert.True(t, dec("22.50").Equal(got.Total))
}

// Descuento del 100%: la línea no aporta base, venta ni IVA.
func TestCalculateTotals_DescuentoTotal(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{{
		Quantity:           dec("4"),
		UnitPrice:          dec("25"),
		TaxRate:            decPtr("0.16"),
		DiscountPercentage: decPtr("100"),
		SalesPercentage:    decPtr("5"),
	}})

	assert.True(t, got.BaseImponible.IsZero())
	assert.True(t, got.MontoVenta.IsZero())
	assert.True(t, got.MontoIVA.IsZero())
	assert.True(t, dec("100.00").Equal(got.MontoDescuento))
	assert.True(t, got.Total.IsZero())
}

// Tasa ausente (nil): aplica el default de 16%.
func TestCalculateTotals_TasaPorDefecto(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{{
		Quantity:  dec("1"),
		UnitPrice: dec("100"),
	}})

	assert.True(t, dec("16.00").Equal(got.MontoIVA), "sin tasa debe aplicar 16%%: %s", got.MontoIVA)
	assert.True(t, dec("116.00").Equal(got.Total))
}

// Porcentajes ausentes (nil): descuento y venta degradan a 0, no a NaN ni error.
func TestCalculateTotals_OpcionalesAusentes(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{{
		Quantity:  dec("2"),
		UnitPrice: dec("10"),
		TaxRate:   decPtr("0"),
	}})

	assert.True(t, got.MontoDescuento.IsZero())
	assert.True(t, got.MontoVenta.IsZero())
	assert.True(t, dec("20.00").Equal(got.Total))
}

// La venta (markup) se calcula sobre la base descontada y queda fuera de la
// base del IVA: es un cargo separado, no parte del precio gravable.
func TestCalculateTotals_VentaFueraDeBaseIVA(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{{
		Quantity:        dec("1"),
		UnitPrice:       dec("100"),
		TaxRate:         decPtr("0.16"),
		SalesPercentage: decPtr("10"),
	}})

	// IVA sobre 100, no sobre 110
	assert.True(t, dec("16.00").Equal(got.MontoIVA))
	assert.True(t, dec("10.00").Equal(got.MontoVenta))
	assert.True(t, dec("126.00").Equal(got.Total))
}

// Invariante de consistencia: Total ≈ BaseImponible + MontoVenta + MontoIVA
// a 2 decimales, para secuencias con fracciones que fuerzan redondeo.
func TestCalculateTotals_InvarianteSuma(t *testing.T) {
	items := []money.LineItem{
		{Quantity: dec("3"), UnitPrice: dec("19.99"), TaxRate: decPtr("0.16"), DiscountPercentage: decPtr("7.5"), SalesPercentage: decPtr("3.33")},
		{Quantity: dec("1.5"), UnitPrice: dec("0.07"), TaxRate: decPtr("0.08")},
		{Quantity: dec("120"), UnitPrice: dec("1.013"), IsExempt: true, DiscountPercentage: decPtr("12.5")},
		{Quantity: dec("7"), UnitPrice: dec("33.33"), SalesPercentage: decPtr("18")},
	}

	got := money.CalculateTotals(items)

	suma := got.BaseImponible.Add(got.MontoVenta).Add(got.MontoIVA)
	diff := got.Total.Sub(suma).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.02")),
		"Total (%s) debe coincidir con Base+Venta+IVA (%s) a 2 decimales", got.Total, suma)
}

// El redondeo se aplica sobre los agregados, no línea a línea: 15 líneas de
// 0.333 con IVA 16% suman 4.995 → base 5.00 (no 15 × 0.33 = 4.95).
func TestCalculateTotals_RedondeoSoloAlAgregado(t *testing.T) {
	items := make([]money.LineItem, 15)
	for i := range items {
		items[i] = money.LineItem{
			Quantity:  dec("1"),
			UnitPrice: dec("0.333"),
			TaxRate:   decPtr("0.16"),
		}
	}

	got := money.CalculateTotals(items)

	require.True(t, dec("5.00").Equal(got.BaseImponible),
		"la base debe redondearse sobre la suma (4.995→5.00), no por línea: %s", got.BaseImponible)
}

// Mitad hacia afuera: 0.125 agregado debe redondear a 0.13, no a 0.12
// (redondeo bancario). Este caso fija la política para ports a otros runtimes.
func TestCalculateTotals_MitadHaciaAfuera(t *testing.T) {
	got := money.CalculateTotals([]money.LineItem{{
		Quantity:  dec("1"),
		UnitPrice: dec("0.125"),
		IsExempt:  true,
	}})

	assert.True(t, dec("0.13").Equal(got.BaseImponible),
		"0.125 debe redondear a 0.13 (mitad hacia afuera): %s", got.BaseImponible)
}
