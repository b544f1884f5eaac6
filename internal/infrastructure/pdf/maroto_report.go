// Package pdf implementa o relatório de estoque em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Adega + data de emissão                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Estoque (fardos+un) | Custo | Venda |    │
//	│          Margem % | Fornecedor                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de produtos e unidades                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/adegacloud/adega-api/internal/domain/entity"
	"github.com/adegacloud/adega-api/internal/domain/stock"
)

var (
	colorPrimary = &props.Color{Red: 90, Green: 24, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa stock.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(_ context.Context, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título do relatório e data de emissão.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Gestão da Adega — Estoque", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(6).Add(
		header("Produto", 4),
		header("Estoque", 2),
		header("Custo Un", 2),
		header("Venda Un", 2),
		header("Margem %", 2),
	)
}

func productRow(p *entity.Product) core.Row {
	cases, loose := stock.Breakdown(p.Stock, p.CaseSize)
	estoque := fmt.Sprintf("%d fardo(s) + %d un", cases, loose)
	if p.Stock == 0 {
		estoque = "esgotado"
	}

	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a}))
	}
	return row.New(5).Add(
		cell(p.Name, 4, align.Left),
		cell(estoque, 2, align.Left),
		cell("R$ "+p.Cost.StringFixed(2), 2, align.Right),
		cell("R$ "+p.Price.StringFixed(2), 2, align.Right),
		cell(p.MarginPct.StringFixed(1), 2, align.Right),
	)
}

// totalsRow: totais de produtos cadastrados e unidades em estoque.
func totalsRow(products []*entity.Product) core.Row {
	var units int64
	for _, p := range products {
		units += p.Stock
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d produto(s), %d unidade(s) em estoque", len(products), units), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right,
			}),
		),
	)
}
