package repository

import "github.com/adegacloud/adega-api/internal/domain/entity"

// SaleLogRepository define o porto do log de baixas. Append-only: a única
// remoção permitida é a da entrada mais recente, feita pelo desfazer depois
// de restaurar o estoque.
type SaleLogRepository interface {
	Append(entry *entity.SaleEntry) error
	// Last devolve a entrada mais recente sem removê-la;
	// domain.ErrEmptySaleLog quando o log está vazio.
	Last() (*entity.SaleEntry, error)
	// RemoveLast descarta a entrada mais recente;
	// domain.ErrEmptySaleLog quando o log está vazio.
	RemoveLast() error
	// List devolve o log da baixa mais recente para a mais antiga.
	List() ([]*entity.SaleEntry, error)
}
