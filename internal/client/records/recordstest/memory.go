// Package recordstest provides an in-memory records.Backend for tests.
package recordstest

import (
	"context"
	"strconv"
	"sync"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/records"
)

// Memory keeps records in insertion order and counts every call.
// Set Err to make the next calls fail.
type Memory struct {
	mu      sync.Mutex
	records []records.Record
	nextID  int
	calls   map[string]int

	Err error
}

func NewMemory() *Memory {
	return &Memory{calls: make(map[string]int)}
}

// Calls returns how often op ("list", "insert", "replace", "remove") ran.
func (m *Memory) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// TotalCalls is the number of backend calls of any kind.
func (m *Memory) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func (m *Memory) ListAll(ctx context.Context) ([]records.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["list"]++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]records.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *Memory) Insert(ctx context.Context, f records.Fields) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["insert"]++
	if m.Err != nil {
		return "", m.Err
	}
	m.nextID++
	id := "rec-" + strconv.Itoa(m.nextID)
	m.records = append(m.records, records.Record{ID: id, Fields: f})
	return id, nil
}

func (m *Memory) Replace(ctx context.Context, id string, f records.Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["replace"]++
	if m.Err != nil {
		return m.Err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Fields = f
			return nil
		}
	}
	return records.ErrNotFound
}

func (m *Memory) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["remove"]++
	if m.Err != nil {
		return m.Err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return records.ErrNotFound
}
