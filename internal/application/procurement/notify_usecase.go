package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/money"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// NotifyOrderUseCase envía la orden al proveedor por los canales pedidos
// (email con PDF adjunto, WhatsApp con resumen de texto). Si al menos un
// canal llega, la orden pasa a SENT; los fallos por canal se reportan sin
// abortar los demás.
type NotifyOrderUseCase struct {
	orderRepo    repository.PurchaseOrderRepository
	companyRepo  repository.CompanyRepository
	supplierRepo repository.SupplierRepository
	pdfUseCase   *OrderPDFUseCase
	mail         MailSender
	whatsapp     WhatsAppSender
}

// NewNotifyOrderUseCase construye el caso de uso.
func NewNotifyOrderUseCase(
	orderRepo repository.PurchaseOrderRepository,
	companyRepo repository.CompanyRepository,
	supplierRepo repository.SupplierRepository,
	pdfUseCase *OrderPDFUseCase,
	mail MailSender,
	whatsapp WhatsAppSender,
) *NotifyOrderUseCase {
	return &NotifyOrderUseCase{
		orderRepo:    orderRepo,
		companyRepo:  companyRepo,
		supplierRepo: supplierRepo,
		pdfUseCase:   pdfUseCase,
		mail:         mail,
		whatsapp:     whatsapp,
	}
}

// Send notifica la orden. Solo se aceptan órdenes DRAFT o SENT (reenvío);
// una orden RECEIVED o CANCELLED no se puede notificar.
func (uc *NotifyOrderUseCase) Send(ctx context.Context, companyID, orderID string, in dto.SendOrderRequest) (*dto.SendOrderResponse, error) {
	if !in.Email && !in.WhatsApp {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if order.Status == entity.OrderStatusReceived || order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrConflict
	}
	company, err := uc.companyRepo.GetByID(order.CompanyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(order.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}

	resp := &dto.SendOrderResponse{OrderID: order.ID, Status: order.Status}

	if in.Email {
		resp.Channels = append(resp.Channels, uc.sendEmail(ctx, order, company, supplier))
	}
	if in.WhatsApp {
		resp.Channels = append(resp.Channels, uc.sendWhatsApp(ctx, order, company, supplier))
	}

	anySent := false
	for _, ch := range resp.Channels {
		if ch.Sent {
			anySent = true
			break
		}
	}
	if anySent && order.Status == entity.OrderStatusDraft {
		order.Status = entity.OrderStatusSent
		order.UpdatedAt = time.Now()
		if err := uc.orderRepo.Update(order); err != nil {
			return nil, err
		}
	}
	resp.Status = order.Status
	return resp, nil
}

func (uc *NotifyOrderUseCase) sendEmail(ctx context.Context, order *entity.PurchaseOrder, company *entity.Company, supplier *entity.Supplier) dto.ChannelResult {
	result := dto.ChannelResult{Channel: "email"}
	if supplier.Email == "" {
		result.Error = "el proveedor no tiene email registrado"
		return result
	}
	pdf, filename, err := uc.pdfUseCase.Generate(ctx, order.CompanyID, order.ID)
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("no se pudo generar el PDF de la orden")
		result.Error = "no se pudo generar el PDF"
		return result
	}
	subject := fmt.Sprintf("Orden de compra %s - %s", order.Number, company.Name)
	body := fmt.Sprintf(
		"Estimado %s,\n\nAdjuntamos la orden de compra %s por un total de %s %s.\n%s\n\nSaludos,\n%s",
		supplier.Name,
		order.Number,
		order.Currency,
		order.Total.StringFixed(2),
		money.AmountInWords(order.Total, money.Currency(order.Currency)),
		company.Name,
	)
	if err := uc.mail.SendOrderMail(ctx, supplier.Email, subject, body, pdf, filename); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Str("to", supplier.Email).Msg("fallo el envío de correo")
		result.Error = err.Error()
		return result
	}
	result.Sent = true
	return result
}

func (uc *NotifyOrderUseCase) sendWhatsApp(ctx context.Context, order *entity.PurchaseOrder, company *entity.Company, supplier *entity.Supplier) dto.ChannelResult {
	result := dto.ChannelResult{Channel: "whatsapp"}
	if !uc.whatsapp.Enabled() {
		result.Error = "canal WhatsApp no configurado"
		return result
	}
	if supplier.WhatsAppPhone == "" {
		result.Error = "el proveedor no tiene teléfono WhatsApp registrado"
		return result
	}
	message := fmt.Sprintf(
		"%s le ha enviado la orden de compra %s por %s %s (%s). Revise su correo para el detalle.",
		company.Name,
		order.Number,
		order.Currency,
		order.Total.StringFixed(2),
		money.AmountInWords(order.Total, money.Currency(order.Currency)),
	)
	if err := uc.whatsapp.SendText(ctx, supplier.WhatsAppPhone, message); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Str("phone", supplier.WhatsAppPhone).Msg("fallo el envío por WhatsApp")
		result.Error = err.Error()
		return result
	}
	result.Sent = true
	return result
}
