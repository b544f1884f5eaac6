package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleEntry registro de baixa no log de vendas. Append-only, exceto pelo
// desfazer, que remove apenas a entrada mais recente.
//
// ProductID é o identificador estável do produto: o desfazer localiza o
// produto por ele, nunca pela posição no estoque no momento da venda.
type SaleEntry struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int64 // unidades baixadas
	Total       decimal.Decimal
	SoldAt      time.Time
}
