package procurement

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// OrderPDFUseCase arma los datos de la orden (cabecera, empresa, proveedor,
// líneas con nombre de material) y delega la generación al puerto PDF.
type OrderPDFUseCase struct {
	orderRepo    repository.PurchaseOrderRepository
	companyRepo  repository.CompanyRepository
	supplierRepo repository.SupplierRepository
	materialRepo repository.MaterialRepository
	generator    OrderPDFGenerator
}

// NewOrderPDFUseCase construye el caso de uso.
func NewOrderPDFUseCase(
	orderRepo repository.PurchaseOrderRepository,
	companyRepo repository.CompanyRepository,
	supplierRepo repository.SupplierRepository,
	materialRepo repository.MaterialRepository,
	generator OrderPDFGenerator,
) *OrderPDFUseCase {
	return &OrderPDFUseCase{
		orderRepo:    orderRepo,
		companyRepo:  companyRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		generator:    generator,
	}
}

// Generate produce el PDF de la orden. Devuelve el binario y el nombre de
// archivo sugerido (Numero.pdf).
func (uc *OrderPDFUseCase) Generate(ctx context.Context, companyID, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil || order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(order.CompanyID)
	if err != nil || company == nil {
		return nil, "", domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(order.SupplierID)
	if err != nil || supplier == nil {
		return nil, "", domain.ErrNotFound
	}
	rawItems, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return nil, "", err
	}

	items := make([]OrderItemForPDF, 0, len(rawItems))
	for _, it := range rawItems {
		enriched := OrderItemForPDF{PurchaseOrderItem: *it}
		if material, _ := uc.materialRepo.GetByID(it.MaterialID); material != nil {
			enriched.MaterialName = material.Name
			enriched.MaterialUnit = material.Unit
		}
		items = append(items, enriched)
	}

	pdf, err := uc.generator.GenerateOrderPDF(ctx, order, company, supplier, items)
	if err != nil {
		return nil, "", err
	}
	return pdf, order.Number + ".pdf", nil
}
