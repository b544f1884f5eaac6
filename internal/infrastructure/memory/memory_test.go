package memory_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adegacloud/adega-api/internal/domain"
	"github.com/adegacloud/adega-api/internal/domain/entity"
	"github.com/adegacloud/adega-api/internal/infrastructure/memory"
)

func produto(id, name string) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      name,
		Packaging: entity.PackagingCan,
		Cost:      decimal.NewFromInt(1),
		Price:     decimal.NewFromInt(3),
		Stock:     10,
		CaseSize:  12,
	}
}

func TestProductRepository_CreateEChaveDuplicada(t *testing.T) {
	repo := memory.NewProductRepository()

	require.NoError(t, repo.Create(produto("p1", "Skol")))
	err := repo.Create(produto("p2", "Skol"))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mesma chave derivada não pode repetir")
}

func TestProductRepository_GetByNameExato(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(produto("p1", "Heineken (LN)")))

	got, err := repo.GetByName("Heineken (LN)")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)

	// busca é exata: sem sufixo é outro produto
	_, err = repo.GetByName("Heineken")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepository_ListPreservaOrdemDeCadastro(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(produto("p1", "Skol")))
	require.NoError(t, repo.Create(produto("p2", "Brahma")))
	require.NoError(t, repo.Create(produto("p3", "Antarctica")))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Skol", list[0].Name)
	assert.Equal(t, "Brahma", list[1].Name)
	assert.Equal(t, "Antarctica", list[2].Name)
}

// O repositório devolve cópias: mutar o retorno não muda o estado interno.
func TestProductRepository_DevolveCopias(t *testing.T) {
	repo := memory.NewProductRepository()
	p := produto("p1", "Skol")
	p.History = []entity.PurchaseEntry{{Quantity: 10, UnitCost: decimal.NewFromInt(1)}}
	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	got.Stock = 999
	got.History[0].Quantity = 999

	again, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), again.Stock)
	assert.Equal(t, int64(10), again.History[0].Quantity)
}

func TestProductRepository_UpdateWithInexistente(t *testing.T) {
	repo := memory.NewProductRepository()
	_, err := repo.UpdateWith("fantasma", func(p *entity.Product) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Erro de fn aborta a gravação: o estado interno fica como estava.
func TestProductRepository_UpdateWithErroNaoGrava(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(produto("p1", "Skol")))

	_, err := repo.UpdateWith("p1", func(p *entity.Product) error {
		p.Stock = 0
		return domain.ErrInsufficientStock
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Stock, "mutação abortada não pode vazar para o estado")
}

// Decrementos condicionais via UpdateWith são atômicos: com estoque 10 e
// vinte decrementos concorrentes de 1, exatamente dez passam.
func TestProductRepository_UpdateWithConcorrente(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(produto("p1", "Skol")))

	const tentativas = 20
	var ok int64
	var wg sync.WaitGroup
	inicio := make(chan struct{})

	for i := 0; i < tentativas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-inicio
			_, err := repo.UpdateWith("p1", func(p *entity.Product) error {
				if p.Stock < 1 {
					return domain.ErrInsufficientStock
				}
				p.Stock--
				return nil
			})
			if err == nil {
				atomic.AddInt64(&ok, 1)
			}
		}()
	}
	close(inicio)
	wg.Wait()

	assert.Equal(t, int64(10), ok, "só cabem dez decrementos num estoque de dez")
	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Stock)
}

func TestSaleLogRepository_AppendLastRemove(t *testing.T) {
	repo := memory.NewSaleLogRepository()

	_, err := repo.Last()
	assert.ErrorIs(t, err, domain.ErrEmptySaleLog)
	assert.ErrorIs(t, repo.RemoveLast(), domain.ErrEmptySaleLog)

	require.NoError(t, repo.Append(&entity.SaleEntry{ID: "v1", ProductID: "p1", Quantity: 5}))
	require.NoError(t, repo.Append(&entity.SaleEntry{ID: "v2", ProductID: "p1", Quantity: 3}))

	last, err := repo.Last()
	require.NoError(t, err)
	assert.Equal(t, "v2", last.ID)

	require.NoError(t, repo.RemoveLast())
	last, err = repo.Last()
	require.NoError(t, err)
	assert.Equal(t, "v1", last.ID)
}

func TestSaleLogRepository_ListMaisRecentePrimeiro(t *testing.T) {
	repo := memory.NewSaleLogRepository()
	require.NoError(t, repo.Append(&entity.SaleEntry{ID: "v1", Quantity: 1}))
	require.NoError(t, repo.Append(&entity.SaleEntry{ID: "v2", Quantity: 2}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "v2", list[0].ID)
	assert.Equal(t, "v1", list[1].ID)
}
