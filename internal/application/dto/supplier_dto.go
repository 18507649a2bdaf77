package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	RIF              string `json:"rif" validate:"required"`
	Name             string `json:"name" validate:"required,min=1,max=200"`
	ContactName      string `json:"contact_name"`
	Email            string `json:"email"`
	WhatsAppPhone    string `json:"whatsapp_phone"`
	Address          string `json:"address"`
	PaymentTermsDays int    `json:"payment_terms_days"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (campos opcionales).
type UpdateSupplierRequest struct {
	Name             *string `json:"name"`
	ContactName      *string `json:"contact_name"`
	Email            *string `json:"email"`
	WhatsAppPhone    *string `json:"whatsapp_phone"`
	Address          *string `json:"address"`
	PaymentTermsDays *int    `json:"payment_terms_days"`
	Active           *bool   `json:"active"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	RIF              string    `json:"rif"`
	Name             string    `json:"name"`
	ContactName      string    `json:"contact_name"`
	Email            string    `json:"email"`
	WhatsAppPhone    string    `json:"whatsapp_phone"`
	Address          string    `json:"address"`
	PaymentTermsDays int       `json:"payment_terms_days"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
