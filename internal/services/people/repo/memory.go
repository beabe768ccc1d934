package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	perr "peopledex/internal/platform/errors"

	"peopledex/internal/modkit/repokit"
	"peopledex/internal/services/people/domain"
)

// Memory is an in-process Storage for tests and sql-free deployments
// it enforces the same nickname uniqueness and search semantics as Postgres
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Person
	byNick map[string]int64
}

// NewMemory constructs an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		byID:   make(map[int64]domain.Person),
		byNick: make(map[string]int64),
	}
}

// NewMemoryBinder adapts a Memory store to the repokit binder seam
// the queryer is ignored, every bind shares the same backing store
func NewMemoryBinder(m *Memory) repokit.Binder[Storage] {
	return repokit.BindFunc[Storage](func(repokit.Queryer) Storage { return m })
}

// Insert implements Storage
func (m *Memory) Insert(_ context.Context, in domain.CreatePersonInput) (domain.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byNick[in.Nickname]; taken {
		return domain.Person{}, perr.WithField(
			perr.Conflictf("nickname already taken"), "apelido",
		)
	}

	m.nextID++
	p := domain.Person{
		ID:       m.nextID,
		Nickname: in.Nickname,
		Name:     in.Name,
		Born:     in.Born,
		Stacks:   append([]string(nil), in.Stacks...),
	}
	m.byID[p.ID] = p
	m.byNick[p.Nickname] = p.ID
	return p, nil
}

// GetByID implements Storage
func (m *Memory) GetByID(_ context.Context, id int64) (domain.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.byID[id]
	if !ok {
		return domain.Person{}, perr.NotFoundID("person", id)
	}
	return p, nil
}

// Search implements Storage
func (m *Memory) Search(_ context.Context, term string, limit int) ([]domain.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []domain.Person
	for _, id := range ids {
		if limit > 0 && len(out) >= limit {
			break
		}
		p := m.byID[id]
		if matches(p, term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Count implements Storage
func (m *Memory) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.byID)), nil
}

// matches mirrors the sql predicate: case-sensitive substring over
// nickname, name, and each stack element
func matches(p domain.Person, term string) bool {
	if strings.Contains(p.Nickname, term) || strings.Contains(p.Name, term) {
		return true
	}
	for _, s := range p.Stacks {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
