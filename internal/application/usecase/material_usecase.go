package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales y su historial de precios.
type MaterialUseCase struct {
	repo      repository.MaterialRepository
	priceRepo repository.PriceHistoryRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, priceRepo repository.PriceHistoryRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, priceRepo: priceRepo}
}

// Create crea un material. El código es único por empresa.
func (uc *MaterialUseCase) Create(companyID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndCode(companyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	material := &entity.Material{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Code:           in.Code,
		Name:           in.Name,
		Description:    in.Description,
		Unit:           in.Unit,
		Category:       in.Category,
		ReferencePrice: in.ReferencePrice,
		TaxExempt:      in.TaxExempt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID obtiene un material por ID validando que pertenece a la empresa.
func (uc *MaterialUseCase) GetByID(companyID, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || material.CompanyID != companyID {
		return nil, nil
	}
	return toMaterialResponse(material), nil
}

// Update actualiza campos opcionales de un material.
func (uc *MaterialUseCase) Update(companyID, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || material.CompanyID != companyID {
		return nil, nil
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.Description != nil {
		material.Description = *in.Description
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.Category != nil {
		material.Category = *in.Category
	}
	if in.ReferencePrice != nil {
		material.ReferencePrice = *in.ReferencePrice
	}
	if in.TaxExempt != nil {
		material.TaxExempt = *in.TaxExempt
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List lista materiales de la empresa con paginación.
func (uc *MaterialUseCase) List(companyID string, limit, offset int) (*dto.MaterialListResponse, error) {
	materials, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MaterialListResponse{
		Items: make([]dto.MaterialResponse, 0, len(materials)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range materials {
		out.Items = append(out.Items, *toMaterialResponse(m))
	}
	return out, nil
}

// Delete elimina un material de la empresa.
func (uc *MaterialUseCase) Delete(companyID, id string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil || material.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// PriceHistory devuelve el historial de precios del material, más reciente
// primero, opcionalmente filtrado por proveedor y moneda.
func (uc *MaterialUseCase) PriceHistory(companyID, materialID string, filter repository.PriceHistoryFilter) (*dto.PriceHistoryResponse, error) {
	material, err := uc.repo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil || material.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	records, err := uc.priceRepo.ListByMaterial(companyID, materialID, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.PriceHistoryResponse{
		MaterialID: materialID,
		Items:      make([]dto.PriceHistoryEntry, 0, len(records)),
	}
	for _, r := range records {
		out.Items = append(out.Items, dto.PriceHistoryEntry{
			ID:          r.ID,
			SupplierID:  r.SupplierID,
			Currency:    r.Currency,
			UnitPrice:   r.UnitPrice,
			Source:      r.Source,
			ReferenceID: r.ReferenceID,
			RecordedAt:  r.RecordedAt,
		})
	}
	return out, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		Code:           m.Code,
		Name:           m.Name,
		Description:    m.Description,
		Unit:           m.Unit,
		Category:       m.Category,
		ReferencePrice: m.ReferencePrice,
		TaxExempt:      m.TaxExempt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
