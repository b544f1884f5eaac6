// Package memory implementa os repositórios em memória de processo.
//
// O estoque e o log de baixas vivem só durante a sessão: começam vazios e
// morrem com o processo. O servidor HTTP atende requisições concorrentes,
// então o estado é protegido por RWMutex e os métodos devolvem cópias.
package memory

import (
	"strings"
	"sync"

	"github.com/adegacloud/adega-api/internal/domain"
	"github.com/adegacloud/adega-api/internal/domain/entity"
)

// ProductRepository repositório de produtos em memória, com ordem de
// cadastro preservada para a tabela de exibição.
type ProductRepository struct {
	mu     sync.RWMutex
	order  []string // IDs na ordem de cadastro
	byID   map[string]*entity.Product
	byName map[string]string // chave derivada -> ID
}

// NewProductRepository cria o repositório vazio.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID:   make(map[string]*entity.Product),
		byName: make(map[string]string),
	}
}

// Create registra um produto novo. ErrDuplicate se a chave já existe.
func (r *ProductRepository) Create(product *entity.Product) error {
	if product == nil || product.ID == "" || strings.TrimSpace(product.Name) == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[product.Name]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.byID[product.ID]; ok {
		return domain.ErrDuplicate
	}

	stored := cloneProduct(product)
	r.byID[stored.ID] = stored
	r.byName[stored.Name] = stored.ID
	r.order = append(r.order, stored.ID)
	return nil
}

// GetByID devolve uma cópia do produto ou ErrNotFound.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(stored), nil
}

// GetByName busca pela chave derivada exata.
func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(r.byID[id]), nil
}

// UpdateWith aplica fn a uma cópia do produto sob o lock de escrita e só
// grava se fn não devolver erro. A mutação inteira (ler, checar, gravar)
// acontece dentro do lock, então duas baixas concorrentes não passam na
// mesma checagem de estoque.
func (r *ProductRepository) UpdateWith(id string, fn func(product *entity.Product) error) (*entity.Product, error) {
	if id == "" || fn == nil {
		return nil, domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	updated := cloneProduct(current)
	if err := fn(updated); err != nil {
		return nil, err
	}
	if updated.Name != current.Name {
		if other, exists := r.byName[updated.Name]; exists && other != id {
			return nil, domain.ErrDuplicate
		}
		delete(r.byName, current.Name)
		r.byName[updated.Name] = id
	}
	r.byID[id] = updated
	return cloneProduct(updated), nil
}

// List devolve cópias na ordem de cadastro.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProduct(r.byID[id]))
	}
	return out, nil
}

// cloneProduct copia o produto e suas fatias para que chamadores não
// compartilhem memória com o estado interno.
func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	if p.History != nil {
		c.History = make([]entity.PurchaseEntry, len(p.History))
		copy(c.History, p.History)
	}
	if p.Image != nil {
		c.Image = make([]byte, len(p.Image))
		copy(c.Image, p.Image)
	}
	return &c
}
