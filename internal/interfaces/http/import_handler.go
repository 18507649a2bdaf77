package http

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
)

// ImportHandler maneja la importación masiva desde .xlsx (protegido).
type ImportHandler struct {
	uc *procurement.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *procurement.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportMaterials godoc
// @Summary      Importar materiales desde .xlsx
// @Description  Upsert por código: las filas nuevas crean, las existentes actualizan. Las filas inválidas se reportan sin abortar.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/import [post]
func (h *ImportHandler) ImportMaterials(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	f, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer f.Close()

	out, err := h.uc.ImportMaterials(c.Context(), companyID, f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	return c.JSON(out)
}

// ImportSuppliers godoc
// @Summary      Importar proveedores desde .xlsx
// @Description  Upsert por RIF. Las filas inválidas se reportan sin abortar.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers/import [post]
func (h *ImportHandler) ImportSuppliers(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	f, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer f.Close()

	out, err := h.uc.ImportSuppliers(c.Context(), companyID, f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	return c.JSON(out)
}

// openUpload abre el archivo del campo multipart "file".
func openUpload(c *fiber.Ctx) (multipart.File, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "campo 'file' requerido (multipart/form-data)")
	}
	return fh.Open()
}
