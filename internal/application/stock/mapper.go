package stock

import (
	"github.com/shopspring/decimal"

	"github.com/adegacloud/adega-api/internal/application/dto"
	"github.com/adegacloud/adega-api/internal/domain/entity"
	"github.com/adegacloud/adega-api/internal/domain/stock"
	"github.com/adegacloud/adega-api/pkg/money"
)

const dateLayout = "2006-01-02"

func toAmount(d decimal.Decimal) money.Amount {
	return money.NewAmount(d)
}

// toProductResponse monta a linha de exibição do produto, com a quebra
// fardos + unidades soltas derivada do estoque.
func toProductResponse(p *entity.Product) *dto.ProductResponse {
	cases, loose := stock.Breakdown(p.Stock, p.CaseSize)

	out := &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Packaging:  string(p.Packaging),
		Supplier:   p.Supplier,
		UnitCost:   toAmount(p.Cost),
		UnitPrice:  toAmount(p.Price),
		Profit:     toAmount(p.Profit),
		MarginPct:  toAmount(p.MarginPct),
		Stock:      p.Stock,
		CaseSize:   p.CaseSize,
		Cases:      cases,
		LooseUnits: loose,
		OutOfStock: p.Stock == 0,
		Image:      p.Image,
	}
	if !p.LastPurchase.IsZero() {
		out.LastPurchase = p.LastPurchase.Format(dateLayout)
	}
	for _, h := range p.History {
		out.History = append(out.History, dto.PurchaseEntryResponse{
			Date:      h.Date.Format(dateLayout),
			Supplier:  h.Supplier,
			Quantity:  h.Quantity,
			UnitCost:  toAmount(h.UnitCost),
			TotalPaid: toAmount(h.TotalPaid),
		})
	}
	return out
}
