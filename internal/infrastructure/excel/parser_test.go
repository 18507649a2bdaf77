package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildXLSX arma un .xlsx en memoria con las filas dadas (la primera es la cabecera).
func buildXLSX(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

// ── Materiales ────────────────────────────────────────────────────────────────

func TestParseMaterials_FilasValidas(t *testing.T) {
	r := buildXLSX(t, [][]string{
		{"Código", "Nombre", "Descripción", "Unidad", "Categoría", "Precio Referencia", "Exento"},
		{"CEM-001", "Cemento gris", "Saco 42.5kg", "SACO", "Construcción", "9.50", "NO"},
		{"HAR-002", "Harina de trigo", "", "KG", "Alimentos", "1,25", "SI"},
	})

	rows, rowErrs, err := NewParser().ParseMaterials(r)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	assert.Equal(t, "CEM-001", rows[0].Code)
	assert.Equal(t, "Cemento gris", rows[0].Name)
	assert.Equal(t, "SACO", rows[0].Unit)
	assert.Equal(t, "9.5", rows[0].ReferencePrice.String())
	assert.False(t, rows[0].TaxExempt)

	// coma como separador decimal y exento afirmativo
	assert.Equal(t, "1.25", rows[1].ReferencePrice.String())
	assert.True(t, rows[1].TaxExempt)
	assert.Equal(t, 3, rows[1].Row)
}

func TestParseMaterials_CabecerasSinAcentos(t *testing.T) {
	// El archivo puede venir con cabeceras sin tildes y en mayúsculas
	r := buildXLSX(t, [][]string{
		{"CODIGO", "NOMBRE", "UNIDAD"},
		{"TUB-001", "Tubo PVC 1/2", "UND"},
	})

	rows, rowErrs, err := NewParser().ParseMaterials(r)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, "TUB-001", rows[0].Code)
}

func TestParseMaterials_FilaInvalidaNoAbortaElResto(t *testing.T) {
	r := buildXLSX(t, [][]string{
		{"Código", "Nombre", "Unidad", "Precio Referencia"},
		{"", "Sin código", "KG", "5"},
		{"OK-001", "Válido", "KG", "5"},
		{"MAL-002", "Precio roto", "KG", "abc"},
	})

	rows, rowErrs, err := NewParser().ParseMaterials(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "OK-001", rows[0].Code)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 2, rowErrs[0].Row)
	assert.Equal(t, 4, rowErrs[1].Row)
}

func TestParseMaterials_FaltaColumnaObligatoria(t *testing.T) {
	r := buildXLSX(t, [][]string{
		{"Nombre", "Unidad"},
		{"Cemento", "SACO"},
	})

	_, _, err := NewParser().ParseMaterials(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codigo")
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func TestParseSuppliers_FilasValidas(t *testing.T) {
	r := buildXLSX(t, [][]string{
		{"RIF", "Nombre", "Contacto", "Email", "WhatsApp", "Dirección", "Días Crédito"},
		{"J-12345678-9", "Ferretería El Tornillo", "Juan Pérez", "ventas@tornillo.com", "+584141234567", "Av. Bolívar", "30"},
		{"J-98765432-1", "Distribuidora Caribe", "", "", "", "", ""},
	})

	rows, rowErrs, err := NewParser().ParseSuppliers(r)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	assert.Equal(t, "J-12345678-9", rows[0].RIF)
	assert.Equal(t, 30, rows[0].PaymentTermsDays)
	assert.Equal(t, "+584141234567", rows[0].WhatsAppPhone)

	// proveedor de contado sin contacto
	assert.Equal(t, 0, rows[1].PaymentTermsDays)
}

func TestParseSuppliers_TelefonoSinE164(t *testing.T) {
	r := buildXLSX(t, [][]string{
		{"RIF", "Nombre", "WhatsApp"},
		{"J-11111111-1", "Proveedor", "04141234567"},
	})

	rows, rowErrs, err := NewParser().ParseSuppliers(r)
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, rowErrs, 1)
	assert.Contains(t, rowErrs[0].Message, "E.164")
}

func TestParse_ArchivoVacio(t *testing.T) {
	r := buildXLSX(t, [][]string{
		{"Código", "Nombre", "Unidad"},
	})

	_, _, err := NewParser().ParseMaterials(r)
	require.Error(t, err)
}
