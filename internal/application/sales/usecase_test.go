package sales_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adegacloud/adega-api/internal/application/dto"
	"github.com/adegacloud/adega-api/internal/application/sales"
	appstock "github.com/adegacloud/adega-api/internal/application/stock"
	"github.com/adegacloud/adega-api/internal/domain"
	"github.com/adegacloud/adega-api/internal/infrastructure/memory"
	"github.com/adegacloud/adega-api/pkg/logger"
	"github.com/adegacloud/adega-api/pkg/money"
)

// fixture monta os casos de uso com um produto em estoque:
// 24 unidades, fardo de 12, venda a R$5,00.
func fixture(t *testing.T) (*sales.UseCase, *appstock.UseCase, string) {
	t.Helper()
	productRepo := memory.NewProductRepository()
	saleRepo := memory.NewSaleLogRepository()
	quiet := logger.New(logger.Config{Env: "production", Level: "error"})

	stockUC := appstock.NewUseCase(productRepo, quiet)
	salesUC := sales.NewUseCase(productRepo, saleRepo, quiet)

	out, err := stockUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Name:      "skol",
		CasePrice: money.NewAmount(decimal.NewFromInt(24)),
		CaseSize:  12,
		Cases:     2,
		UnitPrice: money.NewAmount(decimal.NewFromInt(5)),
	})
	require.NoError(t, err)
	require.Equal(t, int64(24), out.Stock)
	return salesUC, stockUC, out.ID
}

func stockOf(t *testing.T, stockUC *appstock.UseCase, id string) int64 {
	t.Helper()
	list, err := stockUC.List()
	require.NoError(t, err)
	for _, p := range list.Products {
		if p.ID == id {
			return p.Stock
		}
	}
	t.Fatalf("produto %s não encontrado no estoque", id)
	return 0
}

// Venda de 1 fardo + 3 soltas com fardo de 12: baixa 15 unidades,
// estoque cai para 9 e o valor é 15 x preço.
func TestRegisterSale_FardoMaisSoltas(t *testing.T) {
	salesUC, stockUC, id := fixture(t)

	entry, err := salesUC.RegisterSale(dto.RegisterSaleRequest{
		ProductID:  id,
		Cases:      1,
		LooseUnits: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), entry.Quantity)
	assert.True(t, decimal.NewFromInt(75).Equal(entry.Total.Decimal), "valor = 15 x 5,00, veio %s", entry.Total)
	assert.Equal(t, int64(9), stockOf(t, stockUC, id))

	list, err := salesUC.List()
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Skol", list.Sales[0].ProductName)
}

func TestRegisterSale_EstoqueInsuficiente(t *testing.T) {
	salesUC, stockUC, id := fixture(t)

	// tenta baixar 25 com 24 em estoque
	_, err := salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, Cases: 2, LooseUnits: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(24), stockOf(t, stockUC, id), "estoque não muda em venda rejeitada")

	list, err := salesUC.List()
	require.NoError(t, err)
	assert.Zero(t, list.Total, "venda rejeitada não entra no log")
}

func TestRegisterSale_QuantidadeInvalida(t *testing.T) {
	salesUC, _, id := fixture(t)

	_, err := salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero unidades não é venda")

	_, err = salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: "nao-existe", LooseUnits: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUndoLastSale_RestauraEstoque(t *testing.T) {
	salesUC, stockUC, id := fixture(t)

	_, err := salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, Cases: 1, LooseUnits: 3})
	require.NoError(t, err)
	require.Equal(t, int64(9), stockOf(t, stockUC, id))

	undone, err := salesUC.UndoLastSale()
	require.NoError(t, err)

	assert.Equal(t, int64(15), undone.Quantity)
	assert.Equal(t, int64(24), stockOf(t, stockUC, id), "desfazer devolve as unidades baixadas")

	list, err := salesUC.List()
	require.NoError(t, err)
	assert.Zero(t, list.Total, "a entrada desfeita some do log")
}

// Duas vendas: o desfazer remove apenas a mais recente.
func TestUndoLastSale_SomenteAMaisRecente(t *testing.T) {
	salesUC, stockUC, id := fixture(t)

	_, err := salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: 10})
	require.NoError(t, err)
	_, err = salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: 4})
	require.NoError(t, err)
	require.Equal(t, int64(10), stockOf(t, stockUC, id))

	undone, err := salesUC.UndoLastSale()
	require.NoError(t, err)
	assert.Equal(t, int64(4), undone.Quantity)
	assert.Equal(t, int64(14), stockOf(t, stockUC, id))

	list, err := salesUC.List()
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, int64(10), list.Sales[0].Quantity)
}

func TestUndoLastSale_LogVazio(t *testing.T) {
	salesUC, _, _ := fixture(t)

	_, err := salesUC.UndoLastSale()
	assert.ErrorIs(t, err, domain.ErrEmptySaleLog)
}

// Com estoque 1, oito vendas concorrentes de 1 unidade: exatamente uma é
// aceita; as demais recebem estoque insuficiente. Checagem e decremento são
// atômicos, então não há como vender além do estoque.
func TestRegisterSale_ConcorrenteNaoVendeAlemDoEstoque(t *testing.T) {
	productRepo := memory.NewProductRepository()
	saleRepo := memory.NewSaleLogRepository()
	quiet := logger.New(logger.Config{Env: "production", Level: "error"})
	stockUC := appstock.NewUseCase(productRepo, quiet)
	salesUC := sales.NewUseCase(productRepo, saleRepo, quiet)

	out, err := stockUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Name: "skol", Mode: dto.PurchaseModeUnit,
		UnitCost: money.NewAmount(decimal.NewFromInt(2)), Units: 1, CaseSize: 12,
		UnitPrice: money.NewAmount(decimal.NewFromInt(5)),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), out.Stock)

	const vendedores = 8
	var aceitas, recusadas int64
	var wg sync.WaitGroup
	inicio := make(chan struct{})

	for i := 0; i < vendedores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-inicio
			_, err := salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: out.ID, LooseUnits: 1})
			switch {
			case err == nil:
				atomic.AddInt64(&aceitas, 1)
			case errors.Is(err, domain.ErrInsufficientStock):
				atomic.AddInt64(&recusadas, 1)
			}
		}()
	}
	close(inicio)
	wg.Wait()

	assert.Equal(t, int64(1), aceitas, "com estoque 1 só cabe uma venda")
	assert.Equal(t, int64(vendedores-1), recusadas)
	assert.Equal(t, int64(0), stockOf(t, stockUC, out.ID))

	list, err := salesUC.List()
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

// Dois desfazeres concorrentes após duas vendas: cada um desfaz uma entrada
// distinta, nunca a mesma duas vezes.
func TestUndoLastSale_ConcorrenteNaoRestauraDobrado(t *testing.T) {
	salesUC, stockUC, id := fixture(t)

	_, err := salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: 5})
	require.NoError(t, err)
	_, err = salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: 3})
	require.NoError(t, err)
	require.Equal(t, int64(16), stockOf(t, stockUC, id))

	var wg sync.WaitGroup
	inicio := make(chan struct{})
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-inicio
			_, err := salesUC.UndoLastSale()
			assert.NoError(t, err)
		}()
	}
	close(inicio)
	wg.Wait()

	assert.Equal(t, int64(24), stockOf(t, stockUC, id), "as duas baixas desfeitas devolvem 8 unidades, não 16")

	list, err := salesUC.List()
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestList_MaisRecentePrimeiro(t *testing.T) {
	salesUC, _, id := fixture(t)

	_, err := salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: 1})
	require.NoError(t, err)
	_, err = salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: 2})
	require.NoError(t, err)
	_, err = salesUC.RegisterSale(dto.RegisterSaleRequest{ProductID: id, LooseUnits: 3})
	require.NoError(t, err)

	list, err := salesUC.List()
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, int64(3), list.Sales[0].Quantity)
	assert.Equal(t, int64(2), list.Sales[1].Quantity)
	assert.Equal(t, int64(1), list.Sales[2].Quantity)
}
