package money_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del conversor de montos a letras.
//
// Las frases se comparan carácter a carácter: son texto legal impreso en los
// PDFs y cualquier variación ("UN MIL" en vez de "MIL", centavos sin cero a
// la izquierda) es un defecto visible para el usuario final.
// ──────────────────────────────────────────────────────────────────────────────

func TestAmountInWords_Cero(t *testing.T) {
	got := money.AmountInWords(decimal.Zero, money.CurrencyUSD)
	assert.Equal(t, "CERO DOLARES CON 00/100", got)
}

func TestAmountInWords_UnoSingular(t *testing.T) {
	// Con entero 1 el sustantivo va en singular, sin "ES".
	got := money.AmountInWords(decimal.NewFromInt(1), money.CurrencyVES)
	assert.Equal(t, "UN BOLIVAR CON 00/100", got)
}

func TestAmountInWords_CienLiteral(t *testing.T) {
	got := money.AmountInWords(decimal.NewFromInt(100), money.CurrencyUSD)
	assert.Equal(t, "CIEN DOLARES CON 00/100", got)
}

func TestAmountInWords_MilSinUn(t *testing.T) {
	// 1000 se lee "MIL", nunca "UN MIL".
	got := money.AmountInWords(decimal.NewFromInt(1000), money.CurrencyUSD)
	assert.Equal(t, "MIL DOLARES CON 00/100", got)
}

// Fixture de regresión: la terminación "VEINTE Y UN" para números terminados
// en 1 dentro de una decena (21, 31, …) se hereda tal cual del algoritmo de
// tablas del sistema original. Si algún día se cambia a la ortografía
// convencional ("VEINTIUNO"), este test debe cambiar de forma deliberada.
func TestAmountInWords_DosMilVeintiuno(t *testing.T) {
	got := money.AmountInWords(decimal.NewFromFloat(2021.05), money.CurrencyVES)
	assert.Equal(t, "DOS MIL VEINTE Y UN BOLIVARES CON 05/100", got)
}

func TestAmountInWords_CentavosConCero(t *testing.T) {
	// El decimal siempre va con dos dígitos: "05", no "5".
	got := money.AmountInWords(decimal.NewFromFloat(45.05), money.CurrencyUSD)
	assert.Equal(t, "CUARENTA Y CINCO DOLARES CON 05/100", got)
}

func TestAmountInWords_Adolescentes(t *testing.T) {
	// Decena 1: tabla de especiales (DIEZ..DIECINUEVE), no "DIEZ Y SEIS".
	got := money.AmountInWords(decimal.NewFromInt(16), money.CurrencyVES)
	assert.Equal(t, "DIECISEIS BOLIVARES CON 00/100", got)
}

func TestAmountInWords_CientoCompuesto(t *testing.T) {
	// 100 exacto es "CIEN"; 101+ usa "CIENTO".
	got := money.AmountInWords(decimal.NewFromFloat(745.50), money.CurrencyUSD)
	assert.Equal(t, "SETECIENTOS CUARENTA Y CINCO DOLARES CON 50/100", got)
}

func TestAmountInWords_MilesCompuestos(t *testing.T) {
	got := money.AmountInWords(decimal.NewFromInt(352_416), money.CurrencyVES)
	assert.Equal(t, "TRESCIENTOS CINCUENTA Y DOS MIL CUATROCIENTOS DIECISEIS BOLIVARES CON 00/100", got)
}

func TestAmountInWords_UnMillon(t *testing.T) {
	// Millón en singular, sin pluralizar el sustantivo del monto.
	got := money.AmountInWords(decimal.NewFromInt(1_000_000), money.CurrencyVES)
	assert.Equal(t, "UN MILLON BOLIVARES CON 00/100", got)
}

func TestAmountInWords_MillonesCompuestos(t *testing.T) {
	got := money.AmountInWords(decimal.NewFromFloat(2_345_001.05), money.CurrencyVES)
	assert.Equal(t, "DOS MILLONES TRESCIENTOS CUARENTA Y CINCO MIL UN BOLIVARES CON 05/100", got)
}

func TestAmountInWords_MilMillones(t *testing.T) {
	// Los millones recursan: 1e9 se lee "MIL MILLONES", no "UN MIL MILLONES".
	got := money.AmountInWords(decimal.NewFromInt(1_000_000_000), money.CurrencyUSD)
	assert.Equal(t, "MIL MILLONES DOLARES CON 00/100", got)
}

func TestAmountInWords_SoloCentavos(t *testing.T) {
	// Entero 0 con centavos: solo el sustantivo, sin palabras de entero.
	got := money.AmountInWords(decimal.NewFromFloat(0.50), money.CurrencyVES)
	assert.Equal(t, "BOLIVARES CON 50/100", got)
}

func TestAmountInWords_RedondeaComoElMotor(t *testing.T) {
	// 9.999 redondea a 10.00 antes de partir entero/decimal, con la misma
	// política del motor de totales; letras y total describen el mismo valor.
	got := money.AmountInWords(decimal.NewFromFloat(9.999), money.CurrencyUSD)
	assert.Equal(t, "DIEZ DOLARES CON 00/100", got)
}

// Sanidad de ida y vuelta: todo total producido por el motor termina en
// "CON DD/100" con exactamente dos dígitos.
func TestAmountInWords_TotalesDelMotorSiempreValidos(t *testing.T) {
	re := regexp.MustCompile(`CON \d{2}/100$`)

	casos := [][]money.LineItem{
		nil,
		{{Quantity: dec("10"), UnitPrice: dec("5"), TaxRate: decPtr("0.16"), DiscountPercentage: decPtr("10"), SalesPercentage: decPtr("5")}},
		{{Quantity: dec("3"), UnitPrice: dec("19.99"), TaxRate: decPtr("0.08")}, {Quantity: dec("1"), UnitPrice: dec("0.01"), IsExempt: true}},
		{{Quantity: dec("1200"), UnitPrice: dec("33.077"), SalesPercentage: decPtr("12.5")}},
		// Totales en cientos de miles y millones (rango habitual en VES)
		{{Quantity: dec("100000"), UnitPrice: dec("50"), TaxRate: decPtr("0.16")}},
		{{Quantity: dec("250000"), UnitPrice: dec("33.33"), DiscountPercentage: decPtr("2.5")}},
	}
	for i, items := range casos {
		totales := money.CalculateTotals(items)
		for _, cur := range []money.Currency{money.CurrencyUSD, money.CurrencyVES} {
			frase := money.AmountInWords(totales.Total, cur)
			assert.Regexp(t, re, frase, fmt.Sprintf("caso %d, moneda %s: %q", i, cur, frase))
		}
	}
}
