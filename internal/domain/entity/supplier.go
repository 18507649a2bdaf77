package entity

import "time"

// Supplier representa un proveedor de materiales de la empresa.
type Supplier struct {
	ID               string
	CompanyID        string
	RIF              string // identificación fiscal, única por empresa
	Name             string
	ContactName      string
	Email            string
	WhatsAppPhone    string // formato E.164 (ej. +584141234567); vacío = sin WhatsApp
	Address          string
	PaymentTermsDays int // días de crédito acordados; 0 = contado
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
