package procurement

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ImportUseCase importación masiva desde .xlsx: materiales (upsert por
// código) y proveedores (upsert por RIF). Las filas inválidas se reportan
// sin abortar el resto del archivo.
type ImportUseCase struct {
	parser       ImportParser
	materialRepo repository.MaterialRepository
	supplierRepo repository.SupplierRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(parser ImportParser, materialRepo repository.MaterialRepository, supplierRepo repository.SupplierRepository) *ImportUseCase {
	return &ImportUseCase{parser: parser, materialRepo: materialRepo, supplierRepo: supplierRepo}
}

// ImportMaterials procesa un archivo de materiales. Las filas con código ya
// existente actualizan el material; las nuevas lo crean.
func (uc *ImportUseCase) ImportMaterials(ctx context.Context, companyID string, r io.Reader) (*dto.ImportResponse, error) {
	rows, rowErrs, err := uc.parser.ParseMaterials(r)
	if err != nil {
		return nil, err
	}
	resp := &dto.ImportResponse{Errors: rowErrs}
	now := time.Now()
	for _, row := range rows {
		existing, err := uc.materialRepo.GetByCompanyAndCode(companyID, row.Code)
		if err != nil {
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row.Row, Message: err.Error()})
			continue
		}
		if existing != nil {
			existing.Name = row.Name
			existing.Description = row.Description
			existing.Unit = row.Unit
			existing.Category = row.Category
			existing.ReferencePrice = row.ReferencePrice
			existing.TaxExempt = row.TaxExempt
			existing.UpdatedAt = now
			if err := uc.materialRepo.Update(existing); err != nil {
				resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row.Row, Message: err.Error()})
				continue
			}
			resp.Updated++
			continue
		}
		material := &entity.Material{
			ID:             uuid.New().String(),
			CompanyID:      companyID,
			Code:           row.Code,
			Name:           row.Name,
			Description:    row.Description,
			Unit:           row.Unit,
			Category:       row.Category,
			ReferencePrice: row.ReferencePrice,
			TaxExempt:      row.TaxExempt,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.materialRepo.Create(material); err != nil {
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row.Row, Message: err.Error()})
			continue
		}
		resp.Created++
	}
	return resp, nil
}

// ImportSuppliers procesa un archivo de proveedores, upsert por RIF. Los
// proveedores nuevos entran activos.
func (uc *ImportUseCase) ImportSuppliers(ctx context.Context, companyID string, r io.Reader) (*dto.ImportResponse, error) {
	rows, rowErrs, err := uc.parser.ParseSuppliers(r)
	if err != nil {
		return nil, err
	}
	resp := &dto.ImportResponse{Errors: rowErrs}
	now := time.Now()
	for _, row := range rows {
		existing, err := uc.supplierRepo.GetByCompanyAndRIF(companyID, row.RIF)
		if err != nil {
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row.Row, Message: err.Error()})
			continue
		}
		if existing != nil {
			existing.Name = row.Name
			existing.ContactName = row.ContactName
			existing.Email = row.Email
			existing.WhatsAppPhone = row.WhatsAppPhone
			existing.Address = row.Address
			existing.PaymentTermsDays = row.PaymentTermsDays
			existing.UpdatedAt = now
			if err := uc.supplierRepo.Update(existing); err != nil {
				resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row.Row, Message: err.Error()})
				continue
			}
			resp.Updated++
			continue
		}
		supplier := &entity.Supplier{
			ID:               uuid.New().String(),
			CompanyID:        companyID,
			RIF:              row.RIF,
			Name:             row.Name,
			ContactName:      row.ContactName,
			Email:            row.Email,
			WhatsAppPhone:    row.WhatsAppPhone,
			Address:          row.Address,
			PaymentTermsDays: row.PaymentTermsDays,
			Active:           true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := uc.supplierRepo.Create(supplier); err != nil {
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row.Row, Message: err.Error()})
			continue
		}
		resp.Created++
	}
	return resp, nil
}
