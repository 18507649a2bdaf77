package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrderStatusDraft     = "DRAFT"     // creada, aún no enviada al proveedor
	OrderStatusSent      = "SENT"      // notificada al proveedor (email/WhatsApp)
	OrderStatusReceived  = "RECEIVED"  // materiales recibidos
	OrderStatusCancelled = "CANCELLED"
)

// PurchaseOrder representa la cabecera de una orden de compra. Los cinco
// campos de totales son el desglose calculado por el motor money al crear la
// orden; se persisten ya redondeados a 2 decimales.
type PurchaseOrder struct {
	ID             string
	CompanyID      string
	SupplierID     string
	QuoteRequestID string // opcional: cotización de la que nació la orden ("" si fue directa)
	Prefix         string
	Number         string
	Currency       string // USD | VES
	Status         string // ver constantes OrderStatus*
	Date           time.Time
	BaseImponible  decimal.Decimal
	MontoDescuento decimal.Decimal
	MontoVenta     decimal.Decimal
	MontoIVA       decimal.Decimal
	Total          decimal.Decimal
	Notes          string
	CreatedBy      string // user ID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PurchaseOrderItem es una línea de la orden. Replica los campos de entrada
// del motor de totales más el subtotal post-descuento que se imprime en el PDF.
type PurchaseOrderItem struct {
	ID                 string
	OrderID            string
	MaterialID         string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	TaxRate            decimal.Decimal // fracción en [0,1]
	IsExempt           bool
	DiscountPercentage decimal.Decimal // [0,100]
	SalesPercentage    decimal.Decimal // [0,100]
	Subtotal           decimal.Decimal // cantidad × precio − descuento
}
