package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/money"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// QuoteUseCase casos de uso de solicitudes de cotización: creación, consulta
// y registro de la respuesta del proveedor (que alimenta el historial de
// precios con source QUOTE).
type QuoteUseCase struct {
	quoteRepo    repository.QuoteRequestRepository
	supplierRepo repository.SupplierRepository
	materialRepo repository.MaterialRepository
	priceRepo    repository.PriceHistoryRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	quoteRepo repository.QuoteRequestRepository,
	supplierRepo repository.SupplierRepository,
	materialRepo repository.MaterialRepository,
	priceRepo repository.PriceHistoryRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo:    quoteRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		priceRepo:    priceRepo,
	}
}

// Create crea una solicitud de cotización en estado PENDING.
func (uc *QuoteUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateQuoteRequest) (*dto.QuoteRequestResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if !supplier.Active {
		return nil, domain.ErrSupplierInactive
	}
	for _, item := range in.Items {
		if item.MaterialID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		material, err := uc.materialRepo.GetByID(item.MaterialID)
		if err != nil || material == nil {
			return nil, domain.ErrNotFound
		}
		if material.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	qr := &entity.QuoteRequest{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SupplierID:  in.SupplierID,
		Number:      fmt.Sprintf("SC-%d", now.Unix()),
		Status:      entity.QuoteStatusPending,
		Notes:       in.Notes,
		RequestedBy: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.quoteRepo.Create(qr); err != nil {
		return nil, err
	}
	items := make([]*entity.QuoteRequestItem, 0, len(in.Items))
	for _, item := range in.Items {
		qi := &entity.QuoteRequestItem{
			ID:             uuid.New().String(),
			QuoteRequestID: qr.ID,
			MaterialID:     item.MaterialID,
			Quantity:       item.Quantity,
		}
		if err := uc.quoteRepo.CreateItem(qi); err != nil {
			return nil, err
		}
		items = append(items, qi)
	}
	return toQuoteResponse(qr, items), nil
}

// GetByID obtiene una solicitud con sus líneas.
func (uc *QuoteUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.QuoteRequestResponse, error) {
	qr, err := uc.quoteRepo.GetByID(id)
	if err != nil || qr == nil {
		return nil, domain.ErrNotFound
	}
	if qr.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.quoteRepo.GetItemsByRequestID(id)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(qr, items), nil
}

// List lista solicitudes de la empresa con paginación (sin líneas).
func (uc *QuoteUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.QuoteRequestListResponse, error) {
	qrs, err := uc.quoteRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.QuoteRequestListResponse{
		Items: make([]dto.QuoteRequestResponse, 0, len(qrs)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, qr := range qrs {
		out.Items = append(out.Items, *toQuoteResponse(qr, nil))
	}
	return out, nil
}

// RecordQuote registra los precios cotizados por el proveedor: actualiza las
// líneas, pasa la solicitud a QUOTED y agrega cada precio al historial
// (source QUOTE). Solo se acepta sobre solicitudes PENDING.
func (uc *QuoteUseCase) RecordQuote(ctx context.Context, companyID, id string, in dto.RecordQuoteRequest) (*dto.QuoteRequestResponse, error) {
	if len(in.Prices) == 0 || !money.Currency(in.Currency).Valid() {
		return nil, domain.ErrInvalidInput
	}
	qr, err := uc.quoteRepo.GetByID(id)
	if err != nil || qr == nil {
		return nil, domain.ErrNotFound
	}
	if qr.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if qr.Status != entity.QuoteStatusPending {
		return nil, domain.ErrConflict
	}

	items, err := uc.quoteRepo.GetItemsByRequestID(id)
	if err != nil {
		return nil, err
	}
	itemsByID := make(map[string]*entity.QuoteRequestItem, len(items))
	for _, it := range items {
		itemsByID[it.ID] = it
	}

	now := time.Now()
	for _, price := range in.Prices {
		item, ok := itemsByID[price.ItemID]
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		if price.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.QuotedPrice = decimal.NullDecimal{Decimal: price.UnitPrice, Valid: true}
		if err := uc.quoteRepo.UpdateItem(item); err != nil {
			return nil, err
		}
		record := &entity.PriceHistory{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			MaterialID:  item.MaterialID,
			SupplierID:  qr.SupplierID,
			Currency:    in.Currency,
			UnitPrice:   price.UnitPrice,
			Source:      entity.PriceSourceQuote,
			ReferenceID: qr.ID,
			RecordedAt:  now,
		}
		if err := uc.priceRepo.Create(record); err != nil {
			return nil, err
		}
	}

	qr.Status = entity.QuoteStatusQuoted
	qr.UpdatedAt = now
	if err := uc.quoteRepo.Update(qr); err != nil {
		return nil, err
	}
	return toQuoteResponse(qr, items), nil
}

// Close cierra una solicitud (convertida en orden o descartada).
func (uc *QuoteUseCase) Close(ctx context.Context, companyID, id string) (*dto.QuoteRequestResponse, error) {
	qr, err := uc.quoteRepo.GetByID(id)
	if err != nil || qr == nil {
		return nil, domain.ErrNotFound
	}
	if qr.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if qr.Status == entity.QuoteStatusClosed {
		return nil, domain.ErrConflict
	}
	qr.Status = entity.QuoteStatusClosed
	qr.UpdatedAt = time.Now()
	if err := uc.quoteRepo.Update(qr); err != nil {
		return nil, err
	}
	return toQuoteResponse(qr, nil), nil
}

func toQuoteResponse(qr *entity.QuoteRequest, items []*entity.QuoteRequestItem) *dto.QuoteRequestResponse {
	resp := &dto.QuoteRequestResponse{
		ID:         qr.ID,
		CompanyID:  qr.CompanyID,
		SupplierID: qr.SupplierID,
		Number:     qr.Number,
		Status:     qr.Status,
		Notes:      qr.Notes,
		Items:      make([]dto.QuoteRequestItemResponse, 0, len(items)),
		CreatedAt:  qr.CreatedAt,
		UpdatedAt:  qr.UpdatedAt,
	}
	for _, it := range items {
		out := dto.QuoteRequestItemResponse{
			ID:         it.ID,
			MaterialID: it.MaterialID,
			Quantity:   it.Quantity,
		}
		if it.QuotedPrice.Valid {
			p := it.QuotedPrice.Decimal
			out.QuotedPrice = &p
		}
		resp.Items = append(resp.Items, out)
	}
	return resp
}
