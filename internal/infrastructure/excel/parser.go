// Package excel implementa la lectura de archivos .xlsx para la importación
// masiva de materiales y proveedores.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
)

// Asegura que Parser implementa procurement.ImportParser.
var _ procurement.ImportParser = (*Parser)(nil)

// Parser lee archivos .xlsx generados por el usuario. La primera hoja debe
// traer una fila de cabecera; las cabeceras se reconocen sin distinguir
// mayúsculas ni acentos ("Código", "codigo" y "CODIGO" son equivalentes).
type Parser struct{}

// NewParser construye el parser.
func NewParser() *Parser { return &Parser{} }

// Cabeceras reconocidas (ya normalizadas: minúsculas y sin acentos).
const (
	colCodigo      = "codigo"
	colNombre      = "nombre"
	colDescripcion = "descripcion"
	colUnidad      = "unidad"
	colCategoria   = "categoria"
	colPrecio      = "precio referencia"
	colExento      = "exento"

	colRIF         = "rif"
	colContacto    = "contacto"
	colEmail       = "email"
	colWhatsApp    = "whatsapp"
	colDireccion   = "direccion"
	colDiasCredito = "dias credito"
)

// ParseMaterials lee un archivo de materiales. Columnas obligatorias: Código,
// Nombre, Unidad. Opcionales: Descripción, Categoría, Precio Referencia,
// Exento (SI/NO).
func (p *Parser) ParseMaterials(r io.Reader) ([]procurement.MaterialImportRow, []dto.ImportRowError, error) {
	rows, cols, err := readSheet(r)
	if err != nil {
		return nil, nil, err
	}
	if err := requireColumns(cols, colCodigo, colNombre, colUnidad); err != nil {
		return nil, nil, err
	}

	var out []procurement.MaterialImportRow
	var rowErrs []dto.ImportRowError
	for i, row := range rows {
		rowNum := i + 2 // 1-based + cabecera
		code := cell(row, cols, colCodigo)
		name := cell(row, cols, colNombre)
		unit := cell(row, cols, colUnidad)
		if code == "" || name == "" || unit == "" {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: rowNum, Message: "codigo, nombre y unidad son obligatorios"})
			continue
		}
		price := decimal.Zero
		if raw := cell(row, cols, colPrecio); raw != "" {
			price, err = parseDecimal(raw)
			if err != nil {
				rowErrs = append(rowErrs, dto.ImportRowError{Row: rowNum, Message: "precio referencia inválido: " + raw})
				continue
			}
			if price.LessThan(decimal.Zero) {
				rowErrs = append(rowErrs, dto.ImportRowError{Row: rowNum, Message: "precio referencia negativo"})
				continue
			}
		}
		out = append(out, procurement.MaterialImportRow{
			Row:            rowNum,
			Code:           code,
			Name:           name,
			Description:    cell(row, cols, colDescripcion),
			Unit:           unit,
			Category:       cell(row, cols, colCategoria),
			ReferencePrice: price,
			TaxExempt:      parseBool(cell(row, cols, colExento)),
		})
	}
	return out, rowErrs, nil
}

// ParseSuppliers lee un archivo de proveedores. Columnas obligatorias: RIF,
// Nombre. Opcionales: Contacto, Email, WhatsApp, Dirección, Días Crédito.
func (p *Parser) ParseSuppliers(r io.Reader) ([]procurement.SupplierImportRow, []dto.ImportRowError, error) {
	rows, cols, err := readSheet(r)
	if err != nil {
		return nil, nil, err
	}
	if err := requireColumns(cols, colRIF, colNombre); err != nil {
		return nil, nil, err
	}

	var out []procurement.SupplierImportRow
	var rowErrs []dto.ImportRowError
	for i, row := range rows {
		rowNum := i + 2
		rif := cell(row, cols, colRIF)
		name := cell(row, cols, colNombre)
		if rif == "" || name == "" {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: rowNum, Message: "rif y nombre son obligatorios"})
			continue
		}
		days := 0
		if raw := cell(row, cols, colDiasCredito); raw != "" {
			days, err = strconv.Atoi(raw)
			if err != nil || days < 0 {
				rowErrs = append(rowErrs, dto.ImportRowError{Row: rowNum, Message: "dias credito inválido: " + raw})
				continue
			}
		}
		phone := cell(row, cols, colWhatsApp)
		if phone != "" && !strings.HasPrefix(phone, "+") {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: rowNum, Message: "whatsapp debe venir en formato E.164 (+58...)"})
			continue
		}
		out = append(out, procurement.SupplierImportRow{
			Row:              rowNum,
			RIF:              rif,
			Name:             name,
			ContactName:      cell(row, cols, colContacto),
			Email:            cell(row, cols, colEmail),
			WhatsAppPhone:    phone,
			Address:          cell(row, cols, colDireccion),
			PaymentTermsDays: days,
		})
	}
	return out, rowErrs, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// readSheet abre el archivo, toma la primera hoja y devuelve las filas de
// datos más el mapa cabecera normalizada -> índice de columna.
func readSheet(r io.Reader) ([][]string, map[string]int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("excel: abrir archivo: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("excel: el archivo no tiene hojas")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("excel: leer hoja %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("excel: el archivo no tiene filas de datos")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := normalizeHeader(h)
		if key != "" {
			cols[key] = i
		}
	}
	return rows[1:], cols, nil
}

func requireColumns(cols map[string]int, names ...string) error {
	for _, n := range names {
		if _, ok := cols[n]; !ok {
			return fmt.Errorf("excel: falta la columna obligatoria %q", n)
		}
	}
	return nil
}

func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// normalizeHeader pasa a minúsculas y elimina acentos: "Código" -> "codigo".
func normalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	return strings.ToLower(strings.TrimSpace(plain))
}

// parseDecimal acepta punto o coma como separador decimal.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

// parseBool acepta las variantes usuales de afirmación en los archivos.
func parseBool(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SI", "SÍ", "S", "TRUE", "1", "X":
		return true
	}
	return false
}
