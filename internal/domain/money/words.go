package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency es la moneda de una orden o cotización. Solo determina el
// sustantivo del monto en letras; los símbolos y formatos de pantalla son
// responsabilidad del caller.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVES Currency = "VES"
)

// Valid indica si la moneda es una de las soportadas.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyVES
}

// Tablas de palabras, solo lectura. especiales cubre 10–19 indexado por el
// dígito de unidades; para 21, 31, … se usa decenas + " Y " + unidades, de
// modo que 21 se lee "VEINTE Y UN" (forma heredada del sistema original, se
// conserva tal cual; ver words_test.go).
var (
	unidades = [10]string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}

	especiales = [10]string{"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISEIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE"}

	decenas = [10]string{"", "DIEZ", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}

	centenas = [10]string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

// AmountInWords convierte un monto no negativo a su frase en letras para
// documentos legales/comerciales ("Monto en Letras"), ej.:
//
//	AmountInWords(2021.05, VES) → "DOS MIL VEINTE Y UN BOLIVARES CON 05/100"
//	AmountInWords(1000, USD)    → "MIL DOLARES CON 00/100"
//
// El monto se redondea primero a 2 decimales con la misma política del motor
// de totales (mitad hacia afuera), de forma que un total calculado por
// CalculateTotals y su frase en letras describen el mismo valor. Los
// centavos siempre van con dos dígitos ("05", no "5").
//
// Función pura y total sobre montos finitos no negativos; el comportamiento
// con montos negativos no está definido (ningún caller los produce).
func AmountInWords(amount decimal.Decimal, currency Currency) string {
	amount = amount.Round(2)
	entero := amount.IntPart()
	cents := amount.Mul(cien).IntPart() - entero*100

	if amount.IsZero() {
		return fmt.Sprintf("CERO %s CON 00/100", nounPlural(currency))
	}
	if entero == 1 {
		// Singular: "UN BOLIVAR", nunca "UN BOLIVARES"
		return fmt.Sprintf("UN %s CON %02d/100", nounSingular(currency), cents)
	}

	frase := enLetras(entero)
	if frase == "" {
		// entero == 0 con centavos > 0: solo el sustantivo
		return fmt.Sprintf("%s CON %02d/100", nounPlural(currency), cents)
	}
	return fmt.Sprintf("%s %s CON %02d/100", frase, nounPlural(currency), cents)
}

// enLetras convierte un entero no negativo a letras descomponiendo por
// millones, miles y centenas. Los millones recursan sobre sí mismos, de modo
// que 1_000_000_000 se lee "MIL MILLONES". Devuelve "" para 0.
func enLetras(n int64) string {
	if n == 0 {
		return ""
	}
	var partes []string
	if mill := n / 1_000_000; mill > 0 {
		if mill == 1 {
			partes = append(partes, "UN MILLON")
		} else {
			partes = append(partes, enLetras(mill)+" MILLONES")
		}
		n %= 1_000_000
	}
	if miles := n / 1000; miles > 0 {
		if miles == 1 {
			// "MIL", no "UN MIL"
			partes = append(partes, "MIL")
		} else {
			partes = append(partes, grupo(miles)+" MIL")
		}
		n %= 1000
	}
	if n > 0 {
		partes = append(partes, grupo(n))
	}
	return strings.Join(partes, " ")
}

// grupo convierte un entero 0–999 a letras (sin sustantivo).
func grupo(n int64) string {
	if n == 100 {
		return "CIEN"
	}
	var partes []string
	if c := n / 100; c > 0 {
		partes = append(partes, centenas[c])
	}
	resto := n % 100
	dec := resto / 10
	uni := resto % 10
	switch {
	case dec == 1:
		partes = append(partes, especiales[uni])
	case dec > 1:
		if uni > 0 {
			partes = append(partes, decenas[dec]+" Y "+unidades[uni])
		} else {
			partes = append(partes, decenas[dec])
		}
	case uni > 0:
		partes = append(partes, unidades[uni])
	}
	return strings.Join(partes, " ")
}

func nounPlural(c Currency) string {
	if c == CurrencyVES {
		return "BOLIVARES"
	}
	return "DOLARES"
}

func nounSingular(c Currency) string {
	if c == CurrencyVES {
		return "BOLIVAR"
	}
	return "DOLAR"
}
