package dto

// ImportRowError error de validación de una fila del archivo importado.
type ImportRowError struct {
	Row     int    `json:"row"` // número de fila en el archivo (1-based, incluye cabecera)
	Message string `json:"message"`
}

// ImportResponse resultado de una importación masiva.
type ImportResponse struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}
