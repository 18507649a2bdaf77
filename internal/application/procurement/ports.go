package procurement

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción que incluye los
// repos tocados por la creación de órdenes: cabecera+líneas, historial de
// precios y precio de referencia del material. Si fn retorna error se hace
// rollback completo.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		priceRepo repository.PriceHistoryRepository,
		materialRepo repository.MaterialRepository,
	) error) error
}

// OrderItemForPDF línea de orden enriquecida con datos del material para el PDF.
type OrderItemForPDF struct {
	entity.PurchaseOrderItem
	MaterialName string
	MaterialUnit string
}

// OrderPDFGenerator define el puerto de generación del PDF de la orden.
type OrderPDFGenerator interface {
	GenerateOrderPDF(
		ctx context.Context,
		order *entity.PurchaseOrder,
		company *entity.Company,
		supplier *entity.Supplier,
		items []OrderItemForPDF,
	) ([]byte, error)
}

// MailSender define el puerto de envío de correo al proveedor.
type MailSender interface {
	// SendOrderMail envía el correo con el PDF de la orden adjunto.
	SendOrderMail(ctx context.Context, to, subject, body string, pdf []byte, pdfFilename string) error
}

// WhatsAppSender define el puerto de envío de mensajes de texto por WhatsApp.
// Enabled permite degradar limpiamente cuando el canal no está configurado.
type WhatsAppSender interface {
	Enabled() bool
	SendText(ctx context.Context, phone, message string) error
}

// MaterialImportRow fila válida de una importación masiva de materiales.
type MaterialImportRow struct {
	Row            int // número de fila en el archivo
	Code           string
	Name           string
	Description    string
	Unit           string
	Category       string
	ReferencePrice decimal.Decimal
	TaxExempt      bool
}

// SupplierImportRow fila válida de una importación masiva de proveedores.
type SupplierImportRow struct {
	Row              int
	RIF              string
	Name             string
	ContactName      string
	Email            string
	WhatsAppPhone    string
	Address          string
	PaymentTermsDays int
}

// ImportParser define el puerto de lectura de archivos .xlsx de importación.
// Las filas inválidas se reportan con su número de fila; las válidas se
// devuelven listas para upsert.
type ImportParser interface {
	ParseMaterials(r io.Reader) ([]MaterialImportRow, []dto.ImportRowError, error)
	ParseSuppliers(r io.Reader) ([]SupplierImportRow, []dto.ImportRowError, error)
}
