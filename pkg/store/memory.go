package store

import (
	"sort"
	"sync"
	"time"
)

// Memory is a transient in-process Store for tests and development runs
// that should not touch disk. A single mutex serializes operations, so
// each call is atomic with respect to concurrent callers.
type Memory struct {
	mu     sync.Mutex
	tables map[string]*memTable
}

type memTable struct {
	schema Schema
	lastID int64
	rows   map[int64]Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tables: make(map[string]*memTable)}
}

var _ Store = (*Memory)(nil)

func (s *Memory) table(name string, create bool) *memTable {
	t := s.tables[name]
	if t == nil && create {
		t = &memTable{rows: make(map[int64]Record)}
		s.tables[name] = t
	}
	return t
}

func (s *Memory) EnsureSchema(table string, schema Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table(table, true).schema = schema
	return nil
}

func (s *Memory) Insert(table string, fields Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.table(table, true)
	t.lastID++
	id := t.lastID

	row := fields.clone()
	t.schema.apply(row, time.Now())
	row["id"] = id
	t.rows[id] = row
	return id, nil
}

func (s *Memory) Find(table string, id int64) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.table(table, false)
	if t == nil {
		return nil, nil
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return row.clone(), nil
}

func (s *Memory) FindAll(table string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.table(table, false)
	if t == nil || len(t.rows) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id].clone())
	}
	return out, nil
}

func (s *Memory) Update(table string, id int64, fields Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.table(table, false)
	if t == nil {
		return nil
	}
	row, ok := t.rows[id]
	if !ok {
		// Missing id: silent no-op, consistent with Delete.
		return nil
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		row[k] = v
	}
	return nil
}

func (s *Memory) Delete(table string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.table(table, false); t != nil {
		delete(t.rows, id)
	}
	return nil
}
