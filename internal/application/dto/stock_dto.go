package dto

import "github.com/adegacloud/adega-api/pkg/money"

// Modos de compra: por fardo (padrão) ou unidade solta.
const (
	PurchaseModeCase = "CASE"
	PurchaseModeUnit = "UNIT"
)

// RegisterPurchaseRequest body para POST /api/purchases.
//
// Em modo CASE informa-se case_price, case_size e cases; o custo unitário e a
// quantidade são derivados. Em modo UNIT informa-se unit_cost e units;
// case_size continua sendo gravado como referência de exibição.
// Campos monetários aceitam número ou string com vírgula ("24,00").
type RegisterPurchaseRequest struct {
	Name      string       `json:"name"`
	Packaging string       `json:"packaging"` // CAN, LONG_NECK, OTHER
	Supplier  string       `json:"supplier,omitempty"`
	Date      string       `json:"date,omitempty"` // AAAA-MM-DD; vazio = hoje
	Mode      string       `json:"mode,omitempty"` // CASE (padrão) ou UNIT
	CasePrice money.Amount `json:"case_price,omitempty"`
	CaseSize  int64        `json:"case_size,omitempty"`
	Cases     int64        `json:"cases,omitempty"`
	UnitCost  money.Amount `json:"unit_cost,omitempty"`
	Units     int64        `json:"units,omitempty"`
	UnitPrice money.Amount `json:"unit_price"`
	Image     []byte       `json:"image,omitempty"` // blob opaco, base64 no JSON
}

// UpdateProductRequest body para PUT /api/stock/:id (edição inline).
// Campos nil não são alterados. Custo e histórico nunca são editáveis:
// mudam apenas via compras.
type UpdateProductRequest struct {
	Supplier  *string       `json:"supplier,omitempty"`
	UnitPrice *money.Amount `json:"unit_price,omitempty"`
	CaseSize  *int64        `json:"case_size,omitempty"`
	Stock     *int64        `json:"stock,omitempty"`
}

// PurchaseEntryResponse item do histórico de compras de um produto.
type PurchaseEntryResponse struct {
	Date      string       `json:"date"`
	Supplier  string       `json:"supplier,omitempty"`
	Quantity  int64        `json:"quantity"`
	UnitCost  money.Amount `json:"unit_cost"`
	TotalPaid money.Amount `json:"total_paid"`
}

// ProductResponse linha da tabela de estoque.
type ProductResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Packaging    string                  `json:"packaging"`
	Supplier     string                  `json:"supplier,omitempty"`
	LastPurchase string                  `json:"last_purchase,omitempty"`
	UnitCost     money.Amount            `json:"unit_cost"`
	UnitPrice    money.Amount            `json:"unit_price"`
	Profit       money.Amount            `json:"profit"`
	MarginPct    money.Amount            `json:"margin_pct"`
	Stock        int64                   `json:"stock"`
	CaseSize     int64                   `json:"case_size"`
	Cases        int64                   `json:"cases"`
	LooseUnits   int64                   `json:"loose_units"`
	OutOfStock   bool                    `json:"out_of_stock"`
	Image        []byte                  `json:"image,omitempty"`
	History      []PurchaseEntryResponse `json:"history,omitempty"`
}

// StockListResponse body de GET /api/stock.
type StockListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

// FormDefaultsResponse valores para pré-preencher o formulário quando um
// produto já cadastrado é selecionado de novo.
type FormDefaultsResponse struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	Packaging string       `json:"packaging"`
	Supplier  string       `json:"supplier,omitempty"`
	UnitPrice money.Amount `json:"unit_price"`
	CaseSize  int64        `json:"case_size"`
}
