// Package sales contém os casos de uso de baixa: registrar venda, desfazer
// a última e listar o log.
package sales

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adegacloud/adega-api/internal/application/dto"
	"github.com/adegacloud/adega-api/internal/domain"
	"github.com/adegacloud/adega-api/internal/domain/entity"
	"github.com/adegacloud/adega-api/internal/domain/repository"
	"github.com/adegacloud/adega-api/pkg/logger"
	"github.com/adegacloud/adega-api/pkg/money"
)

// UseCase casos de uso do log de baixas.
type UseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleLogRepository
	log         *logger.Logger

	// mu serializa venda e desfazer entre si: cada operação toca o
	// estoque e o log como uma sequência única. Sem isso, dois
	// desfazeres concorrentes restauram a mesma entrada duas vezes, e um
	// desfazer no meio de uma venda pode remover do log a entrada errada.
	mu sync.Mutex
}

// NewUseCase constrói o caso de uso.
func NewUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleLogRepository, log *logger.Logger) *UseCase {
	return &UseCase{productRepo: productRepo, saleRepo: saleRepo, log: log}
}

// RegisterSale baixa do estoque fardos e unidades soltas de um produto.
// A venda só é efetivada se a quantidade total for positiva e couber no
// estoque atual; caso contrário nada muda. Checagem e decremento rodam
// dentro de UpdateWith, sob o lock do repositório: duas vendas concorrentes
// não podem passar na mesma checagem e vender além do estoque.
func (uc *UseCase) RegisterSale(in dto.RegisterSaleRequest) (*dto.SaleEntryResponse, error) {
	if in.ProductID == "" || in.Cases < 0 || in.LooseUnits < 0 {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var totalUnits int64
	updated, err := uc.productRepo.UpdateWith(in.ProductID, func(product *entity.Product) error {
		totalUnits = in.Cases*product.CaseSize + in.LooseUnits
		if totalUnits <= 0 {
			return domain.ErrInvalidInput
		}
		if totalUnits > product.Stock {
			return domain.ErrInsufficientStock
		}
		product.Stock -= totalUnits
		product.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := &entity.SaleEntry{
		ID:          uuid.New().String(),
		ProductID:   updated.ID,
		ProductName: updated.Name,
		Quantity:    totalUnits,
		Total:       updated.Price.Mul(decimal.NewFromInt(totalUnits)),
		SoldAt:      time.Now(),
	}
	if err := uc.saleRepo.Append(entry); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product", entry.ProductName).
		Int64("quantity", entry.Quantity).
		Str("total", entry.Total.StringFixed(2)).
		Int64("stock", updated.Stock).
		Msg("baixa registrada")
	return toSaleResponse(entry), nil
}

// UndoLastSale desfaz a baixa mais recente: devolve a quantidade ao produto,
// localizado pelo ID estável gravado na entrada, e só então remove a entrada
// do log. Log vazio devolve ErrEmptySaleLog; produto inexistente devolve
// ErrConflict e mantém o log intacto, já que o estoque não pode ser
// restaurado com segurança.
func (uc *UseCase) UndoLastSale() (*dto.SaleEntryResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	last, err := uc.saleRepo.Last()
	if err != nil {
		return nil, err
	}

	_, err = uc.productRepo.UpdateWith(last.ProductID, func(product *entity.Product) error {
		product.Stock += last.Quantity
		product.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	if err := uc.saleRepo.RemoveLast(); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product", last.ProductName).
		Int64("quantity", last.Quantity).
		Msg("baixa desfeita")
	return toSaleResponse(last), nil
}

// List devolve o log de baixas, mais recente primeiro.
func (uc *UseCase) List() (*dto.SaleListResponse, error) {
	entries, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Total: len(entries),
		Sales: make([]dto.SaleEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Sales = append(out.Sales, *toSaleResponse(e))
	}
	return out, nil
}

func toSaleResponse(e *entity.SaleEntry) *dto.SaleEntryResponse {
	return &dto.SaleEntryResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		Quantity:    e.Quantity,
		Total:       money.NewAmount(e.Total),
		SoldAt:      e.SoldAt.Format(time.RFC3339),
	}
}
