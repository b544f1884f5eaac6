package memory

import (
	"sync"

	"github.com/adegacloud/adega-api/internal/domain"
	"github.com/adegacloud/adega-api/internal/domain/entity"
)

// SaleLogRepository log de baixas em memória, append-only.
type SaleLogRepository struct {
	mu      sync.RWMutex
	entries []entity.SaleEntry // ordem cronológica de inserção
}

// NewSaleLogRepository cria o log vazio.
func NewSaleLogRepository() *SaleLogRepository {
	return &SaleLogRepository{}
}

// Append registra uma baixa no fim do log.
func (r *SaleLogRepository) Append(entry *entity.SaleEntry) error {
	if entry == nil || entry.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// Last devolve uma cópia da entrada mais recente sem removê-la.
func (r *SaleLogRepository) Last() (*entity.SaleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return nil, domain.ErrEmptySaleLog
	}
	last := r.entries[len(r.entries)-1]
	return &last, nil
}

// RemoveLast descarta a entrada mais recente.
func (r *SaleLogRepository) RemoveLast() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return domain.ErrEmptySaleLog
	}
	r.entries = r.entries[:len(r.entries)-1]
	return nil
}

// List devolve cópias da baixa mais recente para a mais antiga.
func (r *SaleLogRepository) List() ([]*entity.SaleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.SaleEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		out = append(out, &e)
	}
	return out, nil
}
