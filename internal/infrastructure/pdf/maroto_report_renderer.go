// Package pdf genera la versión imprimible de los reportes con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Período + Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: encabezado + una fila por registro                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de registros                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
)

// gridSize columnas de la grilla de Maroto.
const gridSize = 12

var (
	colorPrimary = &props.Color{Red: 230, Green: 81, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.TableRenderer = (*ReportRenderer)(nil)

// ReportRenderer implementa ports.TableRenderer usando Maroto v2.
type ReportRenderer struct {
	author string
}

// NewReportRenderer construye el generador. author va en los metadatos del PDF.
func NewReportRenderer(author string) *ReportRenderer { return &ReportRenderer{author: author} }

func (r *ReportRenderer) Extension() string   { return "pdf" }
func (r *ReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *ReportRenderer) Render(t ports.ExportTable) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(t.Title, true).
		WithAuthor(r.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if t.Placeholder != "" {
		m.AddRows(row.New(12).Add(col.New(gridSize).Add(
			text.New(t.Placeholder, props.Text{Size: 11, Align: align.Center, Top: 4, Color: colorGray}),
		)))
	} else {
		sizes := columnSizes(len(t.Header))
		m.AddRows(tableHeaderRow(t.Header, sizes))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
		for _, cells := range t.Rows {
			m.AddRows(tableRow(cells, sizes))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(row.New(6).Add(col.New(gridSize).Add(
			text.New(fmt.Sprintf("Registros: %d", len(t.Rows)), props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 1}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y período + fecha (der).
func headerRow(t ports.ExportTable) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(t.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Período: "+t.Period, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Gerado em: "+t.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(header []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(header))
	for i, h := range header {
		cols = append(cols, col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: cellAlign(i), Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRow(cells []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(sizes))
	for i, size := range sizes {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		cols = append(cols, col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: cellAlign(i), Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// columnSizes reparte las 12 columnas de la grilla; el resto va a la primera (descripciones).
func columnSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > gridSize {
		n = gridSize
	}
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = gridSize / n
	}
	sizes[0] += gridSize % n
	return sizes
}

// La primera columna es texto; el resto son cantidades.
func cellAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}
