// seed_demo genera un script SQL con datos de demostración: una empresa,
// un usuario admin (password hasheado con bcrypt) y un catálogo mínimo de
// proveedores y materiales.
//
// Uso: go run ./cmd/seed_demo [password-admin]
// Por defecto el password es "admin123".
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := "admin123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	companyID := uuid.New().String()
	adminID := uuid.New().String()
	supplierID := uuid.New().String()

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración (generado por cmd/seed_demo)\n\n")

	fmt.Fprintf(out, `INSERT INTO companies (id, name, rif, address, phone, email)
VALUES ('%s', 'Distribuidora Demo C.A.', 'J-12345678-9', 'Av. Principal, Caracas', '+582121234567', 'compras@demo.example')
ON CONFLICT (rif) DO NOTHING;

`, companyID)

	fmt.Fprintf(out, `INSERT INTO users (id, company_id, email, password_hash, name, role)
VALUES ('%s', '%s', 'admin@demo.example', '%s', 'Administrador', 'admin')
ON CONFLICT (company_id, email) DO NOTHING;

`, adminID, companyID, escapeSQL(string(hash)))

	fmt.Fprintf(out, `INSERT INTO suppliers (id, company_id, rif, name, contact_name, email, whatsapp_phone, payment_terms_days)
VALUES ('%s', '%s', 'J-98765432-1', 'Suministros Industriales S.A.', 'Pedro Pérez', 'ventas@suministros.example', '+584141234567', 30)
ON CONFLICT (company_id, rif) DO NOTHING;

`, supplierID, companyID)

	materials := []struct {
		code, name, unit, price string
		exempt                  bool
	}{
		{"MAT-001", "Cemento gris 42.5 kg", "saco", "9.50", false},
		{"MAT-002", "Cabilla 3/8 x 12 m", "unidad", "4.25", false},
		{"MAT-003", "Harina de maíz precocida 1 kg", "unidad", "1.10", true},
	}
	for _, m := range materials {
		fmt.Fprintf(out, `INSERT INTO materials (id, company_id, code, name, unit, reference_price, tax_exempt)
VALUES ('%s', '%s', '%s', '%s', '%s', %s, %t)
ON CONFLICT (company_id, code) DO NOTHING;

`, uuid.New().String(), companyID, m.code, escapeSQL(m.name), m.unit, m.price, m.exempt)
	}

	fmt.Printf("Generado %s\nAdmin: admin@demo.example / %s\n", outPath, password)
}

// findModuleRoot sube directorios hasta encontrar go.mod.
func findModuleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
