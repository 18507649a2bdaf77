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

// CreateOrderUseCase crea una orden de compra: calcula el desglose de totales
// con el motor money y persiste cabecera, líneas e historial de precios en
// una sola transacción.
type CreateOrderUseCase struct {
	txRunner     OrderTxRunner
	supplierRepo repository.SupplierRepository
	materialRepo repository.MaterialRepository
	orderRepo    repository.PurchaseOrderRepository
	quoteRepo    repository.QuoteRequestRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner OrderTxRunner,
	supplierRepo repository.SupplierRepository,
	materialRepo repository.MaterialRepository,
	orderRepo repository.PurchaseOrderRepository,
	quoteRepo repository.QuoteRequestRepository,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		orderRepo:    orderRepo,
		quoteRepo:    quoteRepo,
	}
}

// CreateOrder valida proveedor y materiales, calcula totales y persiste la
// orden en estado DRAFT. El precio pactado por línea alimenta el historial de
// precios (source ORDER) y actualiza el precio de referencia del material.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, companyID, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !money.Currency(in.Currency).Valid() {
		return nil, domain.ErrInvalidInput
	}

	// Proveedor: debe existir, ser de la empresa y estar activo
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

	// Cotización origen (opcional): debe ser de la empresa y del mismo proveedor
	if in.QuoteRequestID != "" {
		qr, err := uc.quoteRepo.GetByID(in.QuoteRequestID)
		if err != nil || qr == nil {
			return nil, domain.ErrNotFound
		}
		if qr.CompanyID != companyID || qr.SupplierID != in.SupplierID {
			return nil, domain.ErrForbidden
		}
	}

	// Materiales: validación fuera de la tx (solo lectura)
	materialsByID := make(map[string]*entity.Material)
	for i := range in.Items {
		item := &in.Items[i]
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
		materialsByID[item.MaterialID] = material
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsZero() {
			in.Items[i].UnitPrice = material.ReferencePrice
		}
	}

	// Desglose de totales: una LineItem del motor por línea de la orden. El
	// exento del material manda sobre el flag de la línea (un material exento
	// nunca genera IVA aunque el caller no marque is_exempt).
	lines := make([]money.LineItem, 0, len(in.Items))
	for _, item := range in.Items {
		material := materialsByID[item.MaterialID]
		lines = append(lines, money.LineItem{
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			TaxRate:            item.TaxRate,
			IsExempt:           item.IsExempt || material.TaxExempt,
			DiscountPercentage: item.DiscountPercentage,
			SalesPercentage:    item.SalesPercentage,
		})
	}
	totals := money.CalculateTotals(lines)

	now := time.Now()
	orderID := uuid.New().String()
	prefix := in.Prefix
	if prefix == "" {
		prefix = "OC"
	}

	var order *entity.PurchaseOrder
	var orderItems []*entity.PurchaseOrderItem

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		priceRepo repository.PriceHistoryRepository,
		materialRepo repository.MaterialRepository,
	) error {
		// 1) Consecutivo de orden dentro de la tx (evita huecos bajo concurrencia)
		seq, err := orderRepo.NextNumber(companyID)
		if err != nil {
			return err
		}

		order = &entity.PurchaseOrder{
			ID:             orderID,
			CompanyID:      companyID,
			SupplierID:     in.SupplierID,
			QuoteRequestID: in.QuoteRequestID,
			Prefix:         prefix,
			Number:         fmt.Sprintf("%s-%06d", prefix, seq),
			Currency:       in.Currency,
			Status:         entity.OrderStatusDraft,
			Date:           now,
			BaseImponible:  totals.BaseImponible,
			MontoDescuento: totals.MontoDescuento,
			MontoVenta:     totals.MontoVenta,
			MontoIVA:       totals.MontoIVA,
			Total:          totals.Total,
			Notes:          in.Notes,
			CreatedBy:      userID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}

		// 2) Líneas + historial de precios + precio de referencia
		for i, item := range in.Items {
			line := lines[i]
			subtotal := item.Quantity.Mul(item.UnitPrice).
				Sub(item.Quantity.Mul(item.UnitPrice).Mul(coalesceZero(item.DiscountPercentage)).Div(decimal.NewFromInt(100)))
			detail := &entity.PurchaseOrderItem{
				ID:                 uuid.New().String(),
				OrderID:            orderID,
				MaterialID:         item.MaterialID,
				Quantity:           item.Quantity,
				UnitPrice:          item.UnitPrice,
				TaxRate:            effectiveTaxRate(line),
				IsExempt:           line.IsExempt,
				DiscountPercentage: coalesceZero(item.DiscountPercentage),
				SalesPercentage:    coalesceZero(item.SalesPercentage),
				Subtotal:           subtotal.Round(2),
			}
			if err := orderRepo.CreateItem(detail); err != nil {
				return err
			}

			record := &entity.PriceHistory{
				ID:          uuid.New().String(),
				CompanyID:   companyID,
				MaterialID:  item.MaterialID,
				SupplierID:  in.SupplierID,
				Currency:    in.Currency,
				UnitPrice:   item.UnitPrice,
				Source:      entity.PriceSourceOrder,
				ReferenceID: orderID,
				RecordedAt:  now,
			}
			if err := priceRepo.Create(record); err != nil {
				return err
			}
			if err := materialRepo.UpdateReferencePrice(item.MaterialID, item.UnitPrice); err != nil {
				return err
			}
			orderItems = append(orderItems, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order, supplier.Name, orderItems), nil
}

// GetOrder obtiene una orden por ID con sus líneas.
func (uc *CreateOrderUseCase) GetOrder(ctx context.Context, companyID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	supplierName := ""
	if supplier, _ := uc.supplierRepo.GetByID(order.SupplierID); supplier != nil {
		supplierName = supplier.Name
	}
	return toOrderResponse(order, supplierName, items), nil
}

// ListOrders lista las órdenes de la empresa (sin líneas) con paginación.
func (uc *CreateOrderUseCase) ListOrders(ctx context.Context, companyID string, limit, offset int) (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o, "", nil))
	}
	return out, nil
}

// CancelOrder cancela una orden que no haya sido recibida.
func (uc *CreateOrderUseCase) CancelOrder(ctx context.Context, companyID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if order.Status == entity.OrderStatusReceived || order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrConflict
	}
	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order, "", nil), nil
}

// ReceiveOrder marca como recibida una orden enviada.
func (uc *CreateOrderUseCase) ReceiveOrder(ctx context.Context, companyID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if order.Status != entity.OrderStatusSent {
		return nil, domain.ErrConflict
	}
	order.Status = entity.OrderStatusReceived
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order, "", nil), nil
}

// effectiveTaxRate devuelve la tasa persistida en la línea: 0 para exentas,
// el default del motor cuando no vino tasa.
func effectiveTaxRate(line money.LineItem) decimal.Decimal {
	if line.IsExempt {
		return decimal.Zero
	}
	if line.TaxRate == nil {
		return decimal.NewFromFloat(0.16)
	}
	return *line.TaxRate
}

func coalesceZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func toOrderResponse(o *entity.PurchaseOrder, supplierName string, items []*entity.PurchaseOrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:             o.ID,
		CompanyID:      o.CompanyID,
		SupplierID:     o.SupplierID,
		SupplierName:   supplierName,
		QuoteRequestID: o.QuoteRequestID,
		Number:         o.Number,
		Currency:       o.Currency,
		Status:         o.Status,
		Date:           o.Date.Format("2006-01-02"),
		BaseImponible:  o.BaseImponible,
		MontoDescuento: o.MontoDescuento,
		MontoVenta:     o.MontoVenta,
		MontoIVA:       o.MontoIVA,
		Total:          o.Total,
		MontoEnLetras:  money.AmountInWords(o.Total, money.Currency(o.Currency)),
		Notes:          o.Notes,
		Items:          make([]dto.OrderItemResponse, 0, len(items)),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:                 it.ID,
			MaterialID:         it.MaterialID,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			TaxRate:            it.TaxRate,
			IsExempt:           it.IsExempt,
			DiscountPercentage: it.DiscountPercentage,
			SalesPercentage:    it.SalesPercentage,
			Subtotal:           it.Subtotal,
		})
	}
	return resp
}
