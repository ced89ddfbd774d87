package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/frhanam/todo-list-api/internal/model"
)

// MemoryRepository is a map-backed Repository used by tests and local
// runs. It honors the same staging contract as the Postgres adapter:
// mutations are invisible until Save, which applies them atomically under
// one lock. Reads return defensive copies unless the query asked for
// no-tracking.
type MemoryRepository[E model.Entity] struct {
	mu     sync.RWMutex
	rows   map[int64]E
	nextID int64
	clone  func(E) E
	field  func(e E, name string) (any, bool)
	staged []staged[E]
	closed bool
}

// NewMemory builds a memory repository from an entity clone function and a
// field accessor resolving the mapper-level field names used in queries.
func NewMemory[E model.Entity](clone func(E) E, field func(e E, name string) (any, bool)) *MemoryRepository[E] {
	return &MemoryRepository[E]{
		rows:  make(map[int64]E),
		clone: clone,
		field: field,
	}
}

// NewMemoryUser returns an in-memory user repository.
func NewMemoryUser() *MemoryRepository[*model.User] {
	return NewMemory(
		func(u *model.User) *model.User {
			c := *u
			return &c
		},
		func(u *model.User, name string) (any, bool) {
			switch name {
			case FieldID:
				return u.ID, true
			case FieldFullName:
				return u.FullName, true
			case FieldEmail:
				return u.Email, true
			}
			return nil, false
		},
	)
}

// NewMemoryTodo returns an in-memory todo repository. The users store, when
// given, backs the owner_name field the same way the SQL adapter's join
// does; a missing owner resolves to an empty name.
func NewMemoryTodo(users *MemoryRepository[*model.User]) *MemoryRepository[*model.Todo] {
	return NewMemory(
		func(t *model.Todo) *model.Todo {
			c := *t
			return &c
		},
		func(t *model.Todo, name string) (any, bool) {
			switch name {
			case FieldID:
				return t.ID, true
			case FieldTitle:
				return t.Title, true
			case FieldUserID:
				return t.UserID, true
			case FieldIsCompleted:
				return t.IsCompleted, true
			case FieldIsDeleted:
				return t.IsDeleted, true
			case FieldOwnerName:
				if users == nil {
					return "", true
				}
				u, ok := users.Peek(t.UserID)
				if !ok {
					return "", true
				}
				return u.FullName, true
			}
			return nil, false
		},
	)
}

func (r *MemoryRepository[E]) Query() *Query {
	return NewQuery()
}

func (r *MemoryRepository[E]) Find(ctx context.Context, q *Query) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []E
	for _, e := range r.rows {
		ok, err := r.matches(e, q)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if q != nil && q.Untracked() {
			out = append(out, e)
		} else {
			out = append(out, r.clone(e))
		}
	}

	if err := r.order(out, q); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MemoryRepository[E]) First(ctx context.Context, q *Query) (E, bool, error) {
	var zero E

	all, err := r.Find(ctx, q)
	if err != nil {
		return zero, false, err
	}
	if len(all) == 0 {
		return zero, false, nil
	}
	return all[0], true, nil
}

func (r *MemoryRepository[E]) GetByID(ctx context.Context, id int64) (E, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero E
	e, ok := r.rows[id]
	if !ok {
		return zero, false, nil
	}
	return r.clone(e), true, nil
}

// Peek reads a committed row without copying or error plumbing. It exists
// for field accessors that navigate across stores.
func (r *MemoryRepository[E]) Peek(id int64) (E, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.rows[id]
	return e, ok
}

func (r *MemoryRepository[E]) Add(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, staged[E]{kind: stagedAdd, entity: e})
}

func (r *MemoryRepository[E]) Edit(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, staged[E]{kind: stagedEdit, entity: e})
}

func (r *MemoryRepository[E]) Delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, staged[E]{kind: stagedDelete, id: id})
}

func (r *MemoryRepository[E]) Save(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, op := range r.staged {
		switch op.kind {
		case stagedAdd:
			if op.entity.EntityID() == 0 {
				r.nextID++
				op.entity.SetEntityID(r.nextID)
			} else if op.entity.EntityID() > r.nextID {
				r.nextID = op.entity.EntityID()
			}
			r.rows[op.entity.EntityID()] = r.clone(op.entity)
		case stagedEdit:
			r.rows[op.entity.EntityID()] = r.clone(op.entity)
		case stagedDelete:
			e, ok := r.rows[op.id]
			if !ok {
				continue
			}
			if _, soft := any(e).(model.SoftDeletable); soft {
				c := r.clone(e)
				any(c).(model.SoftDeletable).MarkDeleted()
				r.rows[op.id] = c
			} else {
				delete(r.rows, op.id)
			}
		}
	}

	r.staged = nil
	return nil
}

func (r *MemoryRepository[E]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = nil
	r.closed = true
	return nil
}

func (r *MemoryRepository[E]) matches(e E, q *Query) (bool, error) {
	if q == nil {
		return true, nil
	}
	for _, c := range q.Conds() {
		v, ok := r.field(e, c.Field)
		if !ok {
			return false, fmt.Errorf("unknown query field %q", c.Field)
		}
		switch c.Op {
		case OpEq:
			if v != c.Value {
				return false, nil
			}
		case OpContainsFold:
			have := strings.ToLower(fmt.Sprintf("%v", v))
			want := strings.ToLower(fmt.Sprintf("%v", c.Value))
			if !strings.Contains(have, want) {
				return false, nil
			}
		default:
			return false, fmt.Errorf("unsupported query op %q", c.Op)
		}
	}
	return true, nil
}

func (r *MemoryRepository[E]) order(out []E, q *Query) error {
	orderField := FieldID
	if q != nil && q.Order() != "" {
		orderField = q.Order()
	}

	var err error
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := r.field(out[i], orderField)
		b, bok := r.field(out[j], orderField)
		if !aok || !bok {
			err = fmt.Errorf("unknown order field %q", orderField)
			return false
		}
		switch av := a.(type) {
		case int64:
			bv, _ := b.(int64)
			return av < bv
		case string:
			bv, _ := b.(string)
			return av < bv
		default:
			return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
		}
	})
	return err
}

var (
	_ Repository[*model.Todo] = (*MemoryRepository[*model.Todo])(nil)
	_ Repository[*model.User] = (*MemoryRepository[*model.User])(nil)
)
