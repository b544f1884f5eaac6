package stock

import (
	"context"

	"github.com/adegacloud/adega-api/internal/domain/entity"
	"github.com/adegacloud/adega-api/internal/domain/repository"
)

// ReportGenerator porto de saída para a renderização do relatório de
// estoque. A implementação Maroto vive em internal/infrastructure/pdf.
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// ReportUseCase gera o relatório de estoque em PDF.
type ReportUseCase struct {
	repo      repository.ProductRepository
	generator ReportGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(repo repository.ProductRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator}
}

// StockReportPDF devolve os bytes do PDF com o estoque completo.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, products)
}
