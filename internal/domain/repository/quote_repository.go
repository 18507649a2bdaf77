package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// QuoteRequestRepository define el puerto de persistencia para solicitudes
// de cotización y sus líneas.
type QuoteRequestRepository interface {
	Create(qr *entity.QuoteRequest) error
	CreateItem(item *entity.QuoteRequestItem) error
	GetByID(id string) (*entity.QuoteRequest, error)
	GetItemsByRequestID(id string) ([]*entity.QuoteRequestItem, error)
	Update(qr *entity.QuoteRequest) error
	UpdateItem(item *entity.QuoteRequestItem) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.QuoteRequest, error)
}
