package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/frhanam/todo-list-api/internal/model"
)

// Field maps a query field name to a SQL expression. Join marks fields
// that live on a joined table, pulling the mapper's join clause into the
// compiled statement.
type Field struct {
	Expr string
	Join bool
}

// Mapper describes how one entity kind is stored in Postgres: its table,
// select list, filterable fields, and the statements for each staged
// mutation. SoftDelete is consulted only for entity kinds carrying the
// soft-delete capability.
type Mapper[E model.Entity] struct {
	Name       string
	Table      string
	SelectList string
	Join       string
	IDExpr     string
	Fields     map[string]Field
	Scan       func(row scannable) (E, error)
	Insert     string
	InsertArgs func(e E) []any
	Update     string
	UpdateArgs func(e E) []any
	SoftDelete string
	Delete     string
}

type scannable interface {
	Scan(dest ...any) error
}

// PostgresRepository is the database/sql implementation of Repository.
// The *sql.DB pool is owned by the caller; Close only discards staged
// state. Staging and Save are serialized by a mutex so one instance can
// back concurrent requests, at the cost of concurrent stages landing in
// whichever Save commits first.
type PostgresRepository[E model.Entity] struct {
	db     *sql.DB
	mapper Mapper[E]

	mu     sync.Mutex
	staged []staged[E]
	closed bool
}

type stagedKind int

const (
	stagedAdd stagedKind = iota
	stagedEdit
	stagedDelete
)

type staged[E model.Entity] struct {
	kind   stagedKind
	entity E
	id     int64
}

func NewPostgres[E model.Entity](db *sql.DB, mapper Mapper[E]) *PostgresRepository[E] {
	return &PostgresRepository[E]{db: db, mapper: mapper}
}

func (r *PostgresRepository[E]) Query() *Query {
	return NewQuery()
}

func (r *PostgresRepository[E]) Find(ctx context.Context, q *Query) ([]E, error) {
	stmt, args, err := compileSelect(r.mapper, q, false)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %ss: %w", r.mapper.Name, err)
	}
	defer rows.Close()

	var out []E
	for rows.Next() {
		e, err := r.mapper.Scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %ss: %w", r.mapper.Name, err)
	}
	return out, nil
}

func (r *PostgresRepository[E]) First(ctx context.Context, q *Query) (E, bool, error) {
	var zero E

	stmt, args, err := compileSelect(r.mapper, q, true)
	if err != nil {
		return zero, false, err
	}

	e, err := r.mapper.Scan(r.db.QueryRowContext(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return e, true, nil
}

func (r *PostgresRepository[E]) GetByID(ctx context.Context, id int64) (E, bool, error) {
	var zero E

	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		r.mapper.SelectList, r.mapper.Table, r.mapper.IDExpr)

	e, err := r.mapper.Scan(r.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return e, true, nil
}

func (r *PostgresRepository[E]) Add(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, staged[E]{kind: stagedAdd, entity: e})
}

func (r *PostgresRepository[E]) Edit(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, staged[E]{kind: stagedEdit, entity: e})
}

func (r *PostgresRepository[E]) Delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, staged[E]{kind: stagedDelete, id: id})
}

// Save commits every staged mutation in one transaction. On failure the
// stage is kept so the caller sees exactly what did not commit.
func (r *PostgresRepository[E]) Save(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.staged) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, op := range r.staged {
		if err := r.apply(ctx, tx, op); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	r.staged = nil
	return nil
}

func (r *PostgresRepository[E]) apply(ctx context.Context, tx *sql.Tx, op staged[E]) error {
	switch op.kind {
	case stagedAdd:
		var id int64
		if err := tx.QueryRowContext(ctx, r.mapper.Insert, r.mapper.InsertArgs(op.entity)...).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert %s: %w", r.mapper.Name, err)
		}
		op.entity.SetEntityID(id)
	case stagedEdit:
		if _, err := tx.ExecContext(ctx, r.mapper.Update, r.mapper.UpdateArgs(op.entity)...); err != nil {
			return fmt.Errorf("failed to update %s: %w", r.mapper.Name, err)
		}
	case stagedDelete:
		stmt := r.mapper.Delete
		if softDeletable[E]() && r.mapper.SoftDelete != "" {
			stmt = r.mapper.SoftDelete
		}
		if _, err := tx.ExecContext(ctx, stmt, op.id); err != nil {
			return fmt.Errorf("failed to delete %s: %w", r.mapper.Name, err)
		}
	}
	return nil
}

func (r *PostgresRepository[E]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = nil
	r.closed = true
	return nil
}

// compileSelect turns a Query into a SQL statement. The mapper's join
// clause is included only when a referenced field needs it. The
// no-tracking hint has no SQL rendering: database/sql never tracks.
func compileSelect[E model.Entity](m Mapper[E], q *Query, limitOne bool) (string, []any, error) {
	var (
		where   []string
		args    []any
		join    bool
		orderBy string
	)

	if q != nil {
		for _, c := range q.Conds() {
			f, ok := m.Fields[c.Field]
			if !ok {
				return "", nil, fmt.Errorf("unknown query field %q for %s", c.Field, m.Name)
			}
			if f.Join {
				join = true
			}
			n := len(args) + 1
			switch c.Op {
			case OpEq:
				where = append(where, fmt.Sprintf("%s = $%d", f.Expr, n))
				args = append(args, c.Value)
			case OpContainsFold:
				where = append(where, fmt.Sprintf("%s ILIKE $%d", f.Expr, n))
				args = append(args, fmt.Sprintf("%%%v%%", c.Value))
			default:
				return "", nil, fmt.Errorf("unsupported query op %q", c.Op)
			}
		}
		if q.Order() != "" {
			f, ok := m.Fields[q.Order()]
			if !ok {
				return "", nil, fmt.Errorf("unknown order field %q for %s", q.Order(), m.Name)
			}
			if f.Join {
				join = true
			}
			orderBy = f.Expr
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", m.SelectList, m.Table)
	if join && m.Join != "" {
		b.WriteString(" " + m.Join)
	}
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	if orderBy != "" {
		b.WriteString(" ORDER BY " + orderBy)
	}
	if limitOne {
		b.WriteString(" LIMIT 1")
	}
	return b.String(), args, nil
}
