package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adegacloud/adega-api/internal/application/sales"
	appstock "github.com/adegacloud/adega-api/internal/application/stock"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	StockUC  *appstock.UseCase
	ReportUC *appstock.ReportUseCase
	SalesUC  *sales.UseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC)
	salesHandler := NewSalesHandler(deps.SalesUC)

	// Compras (upsert do estoque)
	api.Post("/purchases", stockHandler.RegisterPurchase)

	// Estoque
	stockGroup := api.Group("/stock")
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/defaults", stockHandler.FormDefaults)
	stockGroup.Get("/report.pdf", stockHandler.StockReportPDF)
	stockGroup.Put("/:id", stockHandler.Update)

	// Baixas
	salesGroup := api.Group("/sales")
	salesGroup.Post("/", salesHandler.RegisterSale)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Delete("/last", salesHandler.UndoLastSale)
}
