package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de una orden de compra. Los campos opcionales usan
// puntero: ausente = default del motor de totales (0, o 16% para tax_rate).
type OrderItemInput struct {
	MaterialID         string           `json:"material_id" validate:"required"`
	Quantity           decimal.Decimal  `json:"quantity" validate:"required"`
	UnitPrice          decimal.Decimal  `json:"unit_price"` // 0 = usar precio de referencia del material
	TaxRate            *decimal.Decimal `json:"tax_rate"`
	IsExempt           bool             `json:"is_exempt"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	SalesPercentage    *decimal.Decimal `json:"sales_percentage"`
}

// CreateOrderRequest entrada para crear una orden de compra.
type CreateOrderRequest struct {
	SupplierID     string           `json:"supplier_id" validate:"required"`
	QuoteRequestID string           `json:"quote_request_id"` // opcional
	Currency       string           `json:"currency" validate:"required,oneof=USD VES"`
	Prefix         string           `json:"prefix"`
	Notes          string           `json:"notes"`
	Items          []OrderItemInput `json:"items" validate:"required,min=1"`
}

// OrderItemResponse línea de la orden en respuestas.
type OrderItemResponse struct {
	ID                 string          `json:"id"`
	MaterialID         string          `json:"material_id"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	IsExempt           bool            `json:"is_exempt"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	SalesPercentage    decimal.Decimal `json:"sales_percentage"`
	Subtotal           decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden con su desglose de totales.
type OrderResponse struct {
	ID             string              `json:"id"`
	CompanyID      string              `json:"company_id"`
	SupplierID     string              `json:"supplier_id"`
	SupplierName   string              `json:"supplier_name,omitempty"`
	QuoteRequestID string              `json:"quote_request_id,omitempty"`
	Number         string              `json:"number"`
	Currency       string              `json:"currency"`
	Status         string              `json:"status"`
	Date           string              `json:"date"`
	BaseImponible  decimal.Decimal     `json:"base_imponible"`
	MontoDescuento decimal.Decimal     `json:"monto_descuento"`
	MontoVenta     decimal.Decimal     `json:"monto_venta"`
	MontoIVA       decimal.Decimal     `json:"monto_iva"`
	Total          decimal.Decimal     `json:"total"`
	MontoEnLetras  string              `json:"monto_en_letras"`
	Notes          string              `json:"notes"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes (sin líneas).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// SendOrderRequest canales por los que notificar la orden al proveedor.
type SendOrderRequest struct {
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

// ChannelResult resultado de un canal de notificación.
type ChannelResult struct {
	Channel string `json:"channel"` // email | whatsapp
	Sent    bool   `json:"sent"`
	Error   string `json:"error,omitempty"`
}

// SendOrderResponse resultado del envío por canal.
type SendOrderResponse struct {
	OrderID  string          `json:"order_id"`
	Status   string          `json:"status"`
	Channels []ChannelResult `json:"channels"`
}
