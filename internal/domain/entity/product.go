package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Packaging tipo de embalagem da bebida. Variantes de embalagem do mesmo
// nome são produtos distintos no estoque (ver stock.DeriveKey).
type Packaging string

const (
	PackagingCan      Packaging = "CAN"
	PackagingLongNeck Packaging = "LONG_NECK"
	PackagingOther    Packaging = "OTHER"
)

// Valid informa se o valor é uma embalagem conhecida.
func (p Packaging) Valid() bool {
	switch p {
	case PackagingCan, PackagingLongNeck, PackagingOther:
		return true
	}
	return false
}

// Product representa uma bebida do estoque da adega.
// Name é a chave derivada (nome normalizado + sufixo de embalagem) e é única.
// Cost é custo médio ponderado, recalculado a cada compra; Stock é sempre em
// unidades soltas — fardos existem só na entrada e na exibição.
type Product struct {
	ID           string
	Name         string // chave derivada, única no estoque
	Packaging    Packaging
	Supplier     string    // fornecedor da compra mais recente
	LastPurchase time.Time // data da compra mais recente
	Cost         decimal.Decimal
	Price        decimal.Decimal
	Profit       decimal.Decimal // Price - Cost
	MarginPct    decimal.Decimal // Profit/Cost*100; 0 quando Cost = 0
	Stock        int64           // unidades
	CaseSize     int64           // unidades por fardo, referência de exibição
	Image        []byte          // blob opaco enviado pela UI, nunca interpretado
	History      []PurchaseEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseEntry registro de compra anexado ao produto. Append-only: nunca
// é alterado depois de criado.
type PurchaseEntry struct {
	Date      time.Time
	Supplier  string
	Quantity  int64 // unidades adicionadas
	UnitCost  decimal.Decimal
	TotalPaid decimal.Decimal
}
