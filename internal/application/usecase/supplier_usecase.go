package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor activo. El RIF es único por empresa.
func (uc *SupplierUseCase) Create(companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndRIF(companyID, in.RIF)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		RIF:              in.RIF,
		Name:             in.Name,
		ContactName:      in.ContactName,
		Email:            in.Email,
		WhatsAppPhone:    in.WhatsAppPhone,
		Address:          in.Address,
		PaymentTermsDays: in.PaymentTermsDays,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID validando que pertenece a la empresa.
func (uc *SupplierUseCase) GetByID(companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza campos opcionales de un proveedor.
func (uc *SupplierUseCase) Update(companyID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.WhatsAppPhone != nil {
		supplier.WhatsAppPhone = *in.WhatsAppPhone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.PaymentTermsDays != nil {
		supplier.PaymentTermsDays = *in.PaymentTermsDays
	}
	if in.Active != nil {
		supplier.Active = *in.Active
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor de la empresa.
func (uc *SupplierUseCase) Delete(companyID, id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista proveedores de la empresa con paginación.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) (*dto.SupplierListResponse, error) {
	suppliers, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierListResponse{
		Items: make([]dto.SupplierResponse, 0, len(suppliers)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range suppliers {
		out.Items = append(out.Items, *toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:               s.ID,
		CompanyID:        s.CompanyID,
		RIF:              s.RIF,
		Name:             s.Name,
		ContactName:      s.ContactName,
		Email:            s.Email,
		WhatsAppPhone:    s.WhatsAppPhone,
		Address:          s.Address,
		PaymentTermsDays: s.PaymentTermsDays,
		Active:           s.Active,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
