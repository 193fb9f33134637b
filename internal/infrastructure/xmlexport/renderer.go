// Package xmlexport serializa los reportes como documento XML con beevik/etree.
package xmlexport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
)

var _ ports.TableRenderer = Renderer{}

// Renderer implementa ports.TableRenderer.
//
//	<relatorio tipo="products" periodo="month" geradoEm="...">
//	  <titulo>Relatório de Produtos</titulo>
//	  <linhas total="2">
//	    <linha numero="1"><campo nome="Produto">X-Burger</campo>...</linha>
//	  </linhas>
//	</relatorio>
type Renderer struct{}

func (Renderer) Extension() string   { return "xml" }
func (Renderer) ContentType() string { return "application/xml; charset=utf-8" }

// Render construye el documento. Los tipos sin tabla llevan solo <aviso>.
func (Renderer) Render(t ports.ExportTable) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("relatorio")
	root.CreateAttr("tipo", t.Type)
	root.CreateAttr("periodo", t.Period)
	root.CreateAttr("geradoEm", t.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateElement("titulo").SetText(t.Title)

	if t.Placeholder != "" {
		root.CreateElement("aviso").SetText(t.Placeholder)
	} else {
		cols := root.CreateElement("colunas")
		for _, h := range t.Header {
			cols.CreateElement("coluna").SetText(h)
		}
		rows := root.CreateElement("linhas")
		rows.CreateAttr("total", strconv.Itoa(len(t.Rows)))
		for i, cells := range t.Rows {
			if len(cells) != len(t.Header) {
				return nil, fmt.Errorf("xml: linha %d com %d campos, esperado %d", i+1, len(cells), len(t.Header))
			}
			row := rows.CreateElement("linha")
			row.CreateAttr("numero", strconv.Itoa(i+1))
			for j, value := range cells {
				field := row.CreateElement("campo")
				field.CreateAttr("nome", t.Header[j])
				field.SetText(value)
			}
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out, nil
}
