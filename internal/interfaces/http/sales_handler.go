package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adegacloud/adega-api/internal/application/dto"
	"github.com/adegacloud/adega-api/internal/application/sales"
)

// SalesHandler atende as requisições de baixa e do log de vendas.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler constrói o handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// RegisterSale godoc
// @Summary      Confirmar baixa (venda)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "product_id, cases, loose_units"
// @Success      201   {object}  dto.SaleEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	entry, err := h.uc.RegisterSale(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List godoc
// @Summary      Log de baixas, mais recente primeiro
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UndoLastSale godoc
// @Summary      Desfazer a última baixa
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SaleEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/last [delete]
func (h *SalesHandler) UndoLastSale(c *fiber.Ctx) error {
	entry, err := h.uc.UndoLastSale()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "baixa desfeita", "entry": entry})
}
