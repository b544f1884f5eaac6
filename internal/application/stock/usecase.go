// Package stock contém os casos de uso do estoque: registrar compra
// (upsert por chave derivada), edição inline, defaults de formulário e a
// listagem com quebra fardos/unidades.
package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adegacloud/adega-api/internal/application/dto"
	"github.com/adegacloud/adega-api/internal/domain"
	"github.com/adegacloud/adega-api/internal/domain/entity"
	"github.com/adegacloud/adega-api/internal/domain/repository"
	"github.com/adegacloud/adega-api/internal/domain/stock"
	"github.com/adegacloud/adega-api/pkg/logger"
)

// UseCase casos de uso do estoque.
type UseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.ProductRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// RegisterPurchase registra uma compra e faz o upsert do produto.
//
// O custo unitário e a quantidade dependem do modo: em CASE derivam do preço
// e do tamanho do fardo; em UNIT vêm direto do request. Em compras repetidas
// o custo vira média ponderada pela quantidade (custo médio); preço de venda,
// fornecedor, data e tamanho do fardo são sobrescritos pela compra mais
// recente e o registro entra no histórico do produto.
func (uc *UseCase) RegisterPurchase(in dto.RegisterPurchaseRequest) (*dto.ProductResponse, error) {
	if isBlank(in.Name) {
		return nil, domain.ErrInvalidInput
	}

	packaging := entity.Packaging(in.Packaging)
	if in.Packaging == "" {
		packaging = entity.PackagingCan
	}
	if !packaging.Valid() {
		return nil, domain.ErrInvalidInput
	}

	unitCost, qty, totalPaid, err := derivePurchase(in)
	if err != nil {
		return nil, err
	}
	// Compra sem custo e sem quantidade não tem efeito nenhum no estoque.
	if unitCost.LessThanOrEqual(decimal.Zero) && qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	entry := entity.PurchaseEntry{
		Date:      date,
		Supplier:  in.Supplier,
		Quantity:  qty,
		UnitCost:  unitCost,
		TotalPaid: totalPaid,
	}

	key := stock.DeriveKey(in.Name, packaging)

	existing, err := uc.repo.GetByName(key)
	switch {
	case err == nil:
		return uc.mergePurchase(existing.ID, in, entry)
	case errors.Is(err, domain.ErrNotFound):
		return uc.createFromPurchase(key, packaging, in, entry)
	default:
		return nil, err
	}
}

// mergePurchase aplica a compra a um produto já cadastrado: custo médio
// ponderado, soma de estoque e sobrescrita dos campos da compra mais
// recente. A mesclagem roda dentro de UpdateWith para que compras
// concorrentes do mesmo produto não percam estoque nem histórico.
func (uc *UseCase) mergePurchase(id string, in dto.RegisterPurchaseRequest, entry entity.PurchaseEntry) (*dto.ProductResponse, error) {
	updated, err := uc.repo.UpdateWith(id, func(product *entity.Product) error {
		product.Cost = stock.AverageCost(product.Stock, product.Cost, entry.Quantity, entry.UnitCost)
		product.Stock += entry.Quantity
		product.Price = in.UnitPrice.Decimal
		product.Supplier = in.Supplier
		product.LastPurchase = entry.Date
		if in.CaseSize > 0 {
			product.CaseSize = in.CaseSize
		}
		if len(in.Image) > 0 {
			product.Image = in.Image
		}
		product.Profit, product.MarginPct = stock.Margin(product.Cost, product.Price)
		product.History = append(product.History, entry)
		product.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product", updated.Name).
		Int64("quantity", entry.Quantity).
		Str("unit_cost", updated.Cost.StringFixed(2)).
		Int64("stock", updated.Stock).
		Msg("compra registrada")
	return toProductResponse(updated), nil
}

// createFromPurchase cadastra o produto a partir da primeira compra.
func (uc *UseCase) createFromPurchase(key string, packaging entity.Packaging, in dto.RegisterPurchaseRequest, entry entity.PurchaseEntry) (*dto.ProductResponse, error) {
	now := time.Now()
	profit, marginPct := stock.Margin(entry.UnitCost, in.UnitPrice.Decimal)
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         key,
		Packaging:    packaging,
		Supplier:     in.Supplier,
		LastPurchase: entry.Date,
		Cost:         entry.UnitCost,
		Price:        in.UnitPrice.Decimal,
		Profit:       profit,
		MarginPct:    marginPct,
		Stock:        entry.Quantity,
		CaseSize:     in.CaseSize,
		Image:        in.Image,
		History:      []entity.PurchaseEntry{entry},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product", product.Name).
		Int64("quantity", entry.Quantity).
		Str("unit_cost", product.Cost.StringFixed(2)).
		Msg("produto cadastrado")
	return toProductResponse(product), nil
}

// Update edição inline de um produto. Custo e histórico não são editáveis;
// mudam apenas via compras.
func (uc *UseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	updated, err := uc.repo.UpdateWith(id, func(product *entity.Product) error {
		if in.Supplier != nil {
			product.Supplier = *in.Supplier
		}
		if in.UnitPrice != nil {
			if in.UnitPrice.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			product.Price = in.UnitPrice.Decimal
			product.Profit, product.MarginPct = stock.Margin(product.Cost, product.Price)
		}
		if in.CaseSize != nil {
			if *in.CaseSize <= 0 {
				return domain.ErrInvalidInput
			}
			product.CaseSize = *in.CaseSize
		}
		if in.Stock != nil {
			if *in.Stock < 0 {
				return domain.ErrInvalidInput
			}
			product.Stock = *in.Stock
		}
		product.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product", updated.Name).
		Int64("stock", updated.Stock).
		Msg("produto editado")
	return toProductResponse(updated), nil
}

// FormDefaults devolve os valores gravados de um produto para pré-preencher
// o formulário quando o nome é selecionado de novo. Substitui o autofill
// implícito por chamada explícita do cliente.
func (uc *UseCase) FormDefaults(name string, packagingRaw string) (*dto.FormDefaultsResponse, error) {
	if isBlank(name) {
		return nil, domain.ErrInvalidInput
	}
	packaging := entity.Packaging(packagingRaw)
	if packagingRaw == "" {
		packaging = entity.PackagingCan
	}
	if !packaging.Valid() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.repo.GetByName(stock.DeriveKey(name, packaging))
	if err != nil {
		return nil, err
	}
	return &dto.FormDefaultsResponse{
		ProductID: product.ID,
		Name:      product.Name,
		Packaging: string(product.Packaging),
		Supplier:  product.Supplier,
		UnitPrice: toAmount(product.Price),
		CaseSize:  product.CaseSize,
	}, nil
}

// List devolve o estoque completo na ordem de cadastro.
func (uc *UseCase) List() (*dto.StockListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.StockListResponse{
		Total:    len(products),
		Products: make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		out.Products = append(out.Products, *toProductResponse(p))
	}
	return out, nil
}

// derivePurchase resolve custo unitário, quantidade e total pago conforme o
// modo de compra.
func derivePurchase(in dto.RegisterPurchaseRequest) (unitCost decimal.Decimal, qty int64, totalPaid decimal.Decimal, err error) {
	mode := in.Mode
	if mode == "" {
		mode = dto.PurchaseModeCase
	}
	switch mode {
	case dto.PurchaseModeCase:
		if in.Cases < 0 || in.CasePrice.LessThan(decimal.Zero) {
			return decimal.Zero, 0, decimal.Zero, domain.ErrInvalidInput
		}
		if in.CaseSize <= 0 {
			return decimal.Zero, 0, decimal.Zero, domain.ErrInvalidInput
		}
		unitCost = in.CasePrice.Div(decimal.NewFromInt(in.CaseSize))
		qty = in.Cases * in.CaseSize
		totalPaid = in.CasePrice.Mul(decimal.NewFromInt(in.Cases))
		return unitCost, qty, totalPaid, nil
	case dto.PurchaseModeUnit:
		if in.Units < 0 || in.UnitCost.LessThan(decimal.Zero) {
			return decimal.Zero, 0, decimal.Zero, domain.ErrInvalidInput
		}
		unitCost = in.UnitCost.Decimal
		qty = in.Units
		totalPaid = unitCost.Mul(decimal.NewFromInt(qty))
		return unitCost, qty, totalPaid, nil
	default:
		return decimal.Zero, 0, decimal.Zero, domain.ErrInvalidInput
	}
}

// parseDate aceita AAAA-MM-DD; vazio vira a data atual.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return d, nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
