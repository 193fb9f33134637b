package ports

import "time"

// ExportTable reporte tabular listo para exportar. Si Placeholder no está vacío el tipo de reporte
// no tiene formato tabular y el documento solo lleva ese texto.
type ExportTable struct {
	Title       string
	Type        string
	Period      string
	GeneratedAt time.Time
	Header      []string
	Rows        [][]string
	Placeholder string
}

// TableRenderer define el puerto de salida para serializar un reporte (CSV, PDF, XML).
// Cada adaptador declara su extensión y content-type para armar la descarga.
type TableRenderer interface {
	Render(t ExportTable) ([]byte, error)
	Extension() string
	ContentType() string
}
