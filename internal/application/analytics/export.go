package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
)

// PlaceholderText contenido de la exportación para tipos sin formato tabular.
const PlaceholderText = "Relatório em desenvolvimento"

var (
	salesHeader    = []string{"Tipo de Pedido", "Quantidade", "Valor Total"}
	productsHeader = []string{"Produto", "Categoria", "Preço", "Unidades Vendidas", "Receita", "Estoque"}
)

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// BuildExportTable arma la tabla de exportación. Usa todos los pedidos: el período solo
// aparece en el nombre del archivo y en el título.
func BuildExportTable(st *state.State, typ, period string, now time.Time) (ports.ExportTable, error) {
	if err := ValidateType(typ); err != nil {
		return ports.ExportTable{}, err
	}
	if err := ValidatePeriod(period); err != nil {
		return ports.ExportTable{}, err
	}
	t := ports.ExportTable{Title: Title(typ, period), Type: typ, Period: period, GeneratedAt: now}
	switch typ {
	case ReportSales:
		t.Header = salesHeader
		for _, s := range StatusCounts(st.Orders) {
			t.Rows = append(t.Rows, []string{s.Status, strconv.Itoa(s.Count), money(s.Total)})
		}
	case ReportProducts:
		t.Header = productsHeader
		for _, p := range productRows(st.Products, st.Orders) {
			t.Rows = append(t.Rows, []string{p.Name, p.Category, money(p.Price), strconv.Itoa(p.UnitsSold), money(p.Revenue), strconv.Itoa(p.Stock)})
		}
	default:
		t.Placeholder = PlaceholderText
	}
	return t, nil
}

// Export arma la tabla y la serializa con el renderer. Nombre: relatorio_<tipo>_<período>_<YYYY-MM-DD UTC>.<ext>.
func Export(st *state.State, typ, period string, now time.Time, r ports.TableRenderer) (*ExportFile, error) {
	t, err := BuildExportTable(st, typ, period, now)
	if err != nil {
		return nil, err
	}
	content, err := r.Render(t)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", r.Extension(), err)
	}
	return &ExportFile{
		Filename:    Filename(typ, period, now, r.Extension()),
		ContentType: r.ContentType(),
		Content:     content,
	}, nil
}

// Filename nombre del archivo exportado.
func Filename(typ, period string, now time.Time, ext string) string {
	return fmt.Sprintf("relatorio_%s_%s_%s.%s", typ, period, now.UTC().Format("2006-01-02"), ext)
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// CSVRenderer serializa la tabla como texto delimitado por comas con encabezado.
type CSVRenderer struct{}

// Render escribe encabezado y filas; para tipos sin tabla solo la línea de aviso.
func (CSVRenderer) Render(t ports.ExportTable) ([]byte, error) {
	if t.Placeholder != "" {
		return []byte(t.Placeholder + "\n"), nil
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (CSVRenderer) Extension() string   { return "csv" }
func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }
