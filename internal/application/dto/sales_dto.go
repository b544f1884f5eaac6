package dto

import "github.com/adegacloud/adega-api/pkg/money"

// RegisterSaleRequest body para POST /api/sales. A quantidade total baixada
// é cases*case_size + loose_units do produto no momento da venda.
type RegisterSaleRequest struct {
	ProductID  string `json:"product_id"`
	Cases      int64  `json:"cases,omitempty"`
	LooseUnits int64  `json:"loose_units,omitempty"`
}

// SaleEntryResponse linha do log de baixas.
type SaleEntryResponse struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int64        `json:"quantity"`
	Total       money.Amount `json:"total"`
	SoldAt      string       `json:"sold_at"`
}

// SaleListResponse body de GET /api/sales (mais recente primeiro).
type SaleListResponse struct {
	Total int                 `json:"total"`
	Sales []SaleEntryResponse `json:"sales"`
}
