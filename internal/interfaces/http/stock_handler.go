package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adegacloud/adega-api/internal/application/dto"
	appstock "github.com/adegacloud/adega-api/internal/application/stock"
)

// StockHandler atende as requisições de compras e estoque.
type StockHandler struct {
	uc     *appstock.UseCase
	report *appstock.ReportUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *appstock.UseCase, report *appstock.ReportUseCase) *StockHandler {
	return &StockHandler{uc: uc, report: report}
}

// RegisterPurchase godoc
// @Summary      Registrar compra (fardo ou unidade solta)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPurchaseRequest  true  "name, packaging, mode (CASE|UNIT), valores da compra"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *StockHandler) RegisterPurchase(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	product, err := h.uc.RegisterPurchase(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary      Tabela completa do estoque
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FormDefaults godoc
// @Summary      Defaults de formulário ao reselecionar um produto
// @Tags         stock
// @Produce      json
// @Param        name       query  string  true   "Nome da bebida"
// @Param        packaging  query  string  false  "CAN (padrão), LONG_NECK ou OTHER"
// @Success      200  {object}  dto.FormDefaultsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/defaults [get]
func (h *StockHandler) FormDefaults(c *fiber.Ctx) error {
	out, err := h.uc.FormDefaults(c.Query("name"), c.Query("packaging"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edição inline de um produto
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos editáveis"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// StockReportPDF godoc
// @Summary      Relatório de estoque em PDF
// @Tags         stock
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) StockReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.report.StockReportPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="estoque.pdf"`)
	return c.Send(pdfBytes)
}
