package entity

import "time"

// Company representa la organización compradora (tenant del sistema). Sus
// datos fiscales se imprimen en la cabecera de las órdenes de compra en PDF.
type Company struct {
	ID        string
	Name      string
	RIF       string // RIF venezolano (ej. J-12345678-9)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
