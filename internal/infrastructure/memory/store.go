// Package memory implementa el almacén de registros en proceso (STORE_DRIVER=memory).
// Mantiene el mismo contrato que el adaptador PostgreSQL: item_code único, orden id DESC,
// búsqueda sobre la forma textual de cada columna y transacciones todo-o-nada.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-api/internal/domain/inventory"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var (
	_ repository.StockRecordRepository = (*Store)(nil)
	_ inventory.TxRunner               = (*Store)(nil)
)

// Store tabla stock_items en memoria. Las operaciones sueltas son atómicas;
// Run trabaja sobre una copia que reemplaza a la tabla viva solo en el commit.
type Store struct {
	mu sync.RWMutex
	t  *table
}

// New construye un almacén vacío.
func New() *Store {
	return &Store{t: newTable()}
}

// Run ejecuta fn sobre una copia de la tabla. Las transacciones se serializan entre sí.
func (s *Store) Run(ctx context.Context, fn func(repo repository.StockRecordRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.t.clone()
	if err := fn(work); err != nil {
		return err
	}
	s.t = work
	return nil
}

// Len número de registros (solo tests y diagnóstico).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.t.rows)
}

func (s *Store) Create(ctx context.Context, record *entity.StockRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Create(ctx, record)
}

func (s *Store) GetByID(ctx context.Context, id int64) (*entity.StockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.GetByID(ctx, id)
}

func (s *Store) Update(ctx context.Context, record *entity.StockRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Update(ctx, record)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Delete(ctx, id)
}

func (s *Store) List(ctx context.Context, filter repository.StockRecordFilter) ([]*entity.StockRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.List(ctx, filter)
}

func (s *Store) ListAll(ctx context.Context, filter repository.StockRecordFilter) ([]*entity.StockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.ListAll(ctx, filter)
}

// table implementa el repositorio sin sincronización; el Store decide el bloqueo.
type table struct {
	rows   map[int64]*entity.StockRecord
	nextID int64
}

func newTable() *table {
	return &table{rows: make(map[int64]*entity.StockRecord), nextID: 1}
}

func (t *table) clone() *table {
	c := &table{rows: make(map[int64]*entity.StockRecord, len(t.rows)), nextID: t.nextID}
	for id, r := range t.rows {
		c.rows[id] = r.Clone()
	}
	return c
}

func (t *table) codeTaken(code string, exceptID int64) bool {
	for id, r := range t.rows {
		if id != exceptID && r.ItemCode == code {
			return true
		}
	}
	return false
}

func (t *table) Create(_ context.Context, record *entity.StockRecord) error {
	if t.codeTaken(record.ItemCode, 0) {
		return domain.ErrDuplicate
	}
	record.ID = t.nextID
	t.nextID++
	t.rows[record.ID] = record.Clone()
	return nil
}

func (t *table) GetByID(_ context.Context, id int64) (*entity.StockRecord, error) {
	r, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return r.Clone(), nil
}

func (t *table) Update(_ context.Context, record *entity.StockRecord) error {
	if _, ok := t.rows[record.ID]; !ok {
		return domain.ErrNotFound
	}
	if t.codeTaken(record.ItemCode, record.ID) {
		return domain.ErrDuplicate
	}
	t.rows[record.ID] = record.Clone()
	return nil
}

func (t *table) Delete(_ context.Context, id int64) error {
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table) List(ctx context.Context, filter repository.StockRecordFilter) ([]*entity.StockRecord, int, error) {
	all, err := t.ListAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	start := filter.Offset
	switch {
	case start < 0:
		start = 0
	case start > total:
		start = total
	}
	end := total
	if filter.Limit > 0 && filter.Limit < total-start {
		end = start + filter.Limit
	}
	return all[start:end], total, nil
}

func (t *table) ListAll(_ context.Context, filter repository.StockRecordFilter) ([]*entity.StockRecord, error) {
	out := make([]*entity.StockRecord, 0, len(t.rows))
	for _, r := range t.rows {
		if filter.AlarmStatus != "" && r.AlarmStatus != filter.AlarmStatus {
			continue
		}
		if !domaininv.MatchesSearch(r, filter.Search) {
			continue
		}
		out = append(out, r.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
