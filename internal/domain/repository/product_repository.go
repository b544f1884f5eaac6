package repository

import "github.com/adegacloud/adega-api/internal/domain/entity"

// ProductRepository define o porto de acesso ao estoque (DIP).
// A implementação em memória vive em internal/infrastructure/memory; o
// estoque dura apenas a sessão do processo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByName busca por chave derivada exata (ver stock.DeriveKey).
	GetByName(name string) (*entity.Product, error)
	// UpdateWith aplica fn ao produto sob o lock do repositório, de forma
	// atômica: ler, checar e gravar fora do lock abriria corrida entre
	// requisições concorrentes (duas baixas passando na mesma checagem de
	// estoque). Se fn devolver erro nada é gravado e o erro é propagado.
	// Devolve uma cópia do produto já gravado.
	UpdateWith(id string, fn func(product *entity.Product) error) (*entity.Product, error)
	// List devolve o estoque na ordem de cadastro.
	List() ([]*entity.Product, error)
}
