// Package money contiene el núcleo de cálculo monetario de la aplicación:
// el motor de totales de órdenes/cotizaciones y el conversor de montos a
// letras. Ambos son funciones puras sin I/O ni estado compartido, por lo que
// pueden invocarse concurrentemente (ej. generación simultánea de PDFs) sin
// ninguna coordinación.
package money

import "github.com/shopspring/decimal"

// Tasa de IVA por defecto cuando la línea no especifica una (16%).
var defaultTaxRate = decimal.NewFromFloat(0.16)

var cien = decimal.NewFromInt(100)

// LineItem es una línea efímera de cotización u orden de compra. No tiene
// identidad ni ciclo de vida: el caller la construye para cada cálculo.
//
// Los campos opcionales son punteros: nil significa "no especificado" y
// colapsa al valor por defecto (0, o 16% para TaxRate). Esto reemplaza los
// chequeos de null dispersos por un coalescing explícito al inicio del
// cálculo por línea.
type LineItem struct {
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	TaxRate            *decimal.Decimal // fracción en [0,1]; nil = 0.16
	IsExempt           bool             // true = sin IVA aunque TaxRate venga definido
	DiscountPercentage *decimal.Decimal // porcentaje en [0,100]; nil = 0
	SalesPercentage    *decimal.Decimal // porcentaje de venta (markup); nil = 0
}

// Totals es el desglose monetario agregado de una secuencia de líneas.
// Todos los campos vienen redondeados a 2 decimales (mitad hacia afuera).
//
// Invariante: Total = BaseImponible + MontoVenta + MontoIVA (el descuento ya
// está restado dentro de BaseImponible).
type Totals struct {
	BaseImponible  decimal.Decimal // base gravable después de descuentos
	MontoDescuento decimal.Decimal // suma de descuentos por línea
	MontoVenta     decimal.Decimal // suma de montos de venta (markup)
	MontoIVA       decimal.Decimal // suma de IVA por línea
	Total          decimal.Decimal // BaseImponible + MontoVenta + MontoIVA
}

// CalculateTotals computa el desglose de totales para una secuencia ordenada
// de líneas. El orden de las operaciones por línea es la regla de negocio y
// no debe alterarse:
//
//  1. valor = cantidad × precio unitario
//  2. descuento = valor × (porcentaje descuento / 100)
//  3. subtotal = valor − descuento
//  4. la base imponible acumula el subtotal (post-descuento, no el valor bruto)
//  5. venta = subtotal × (porcentaje venta / 100) — sobre la base descontada;
//     el monto de venta nunca se grava ni se descuenta de nuevo
//  6. IVA = 0 si la línea es exenta; si no, subtotal × tasa. La tasa aplica a
//     la base descontada y excluye el monto de venta: la venta se trata como
//     cargo separado, no como parte del precio gravable
//  7. total línea = subtotal + venta + IVA
//
// La aritmética intermedia se acumula con precisión completa y el redondeo a
// 2 decimales (mitad hacia afuera) se aplica una sola vez sobre los
// agregados, nunca línea a línea: redondear por línea produce totales
// distintos con muchas líneas.
//
// Función total: no retorna error. Una secuencia vacía produce 0.00 en todos
// los campos; campos opcionales ausentes degradan a su default.
func CalculateTotals(items []LineItem) Totals {
	var base, descuento, venta, iva decimal.Decimal

	for _, item := range items {
		valor := item.Quantity.Mul(item.UnitPrice)

		pctDescuento := coalesce(item.DiscountPercentage, decimal.Zero)
		montoDescuento := valor.Mul(pctDescuento).Div(cien)
		subtotal := valor.Sub(montoDescuento)

		pctVenta := coalesce(item.SalesPercentage, decimal.Zero)
		montoVenta := subtotal.Mul(pctVenta).Div(cien)

		var montoIVA decimal.Decimal
		if !item.IsExempt {
			tasa := coalesce(item.TaxRate, defaultTaxRate)
			montoIVA = subtotal.Mul(tasa)
		}

		base = base.Add(subtotal)
		descuento = descuento.Add(montoDescuento)
		venta = venta.Add(montoVenta)
		iva = iva.Add(montoIVA)
	}

	return Totals{
		BaseImponible:  base.Round(2),
		MontoDescuento: descuento.Round(2),
		MontoVenta:     venta.Round(2),
		MontoIVA:       iva.Round(2),
		Total:          base.Add(venta).Add(iva).Round(2),
	}
}

// coalesce devuelve *v si está definido, o def si el puntero es nil.
func coalesce(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}
