package repository

import (
	"database/sql"
	"fmt"

	"github.com/frhanam/todo-list-api/internal/model"
)

// Query field names shared by the SQL and memory adapters.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldUserID      = "user_id"
	FieldIsCompleted = "is_completed"
	FieldIsDeleted   = "is_deleted"
	FieldOwnerName   = "owner_name"
	FieldEmail       = "email"
	FieldFullName    = "full_name"
)

// NewPostgresTodo returns the todo repository backed by Postgres. The
// owner_name field navigates to the owning user, so filtering on it joins
// the users table.
func NewPostgresTodo(db *sql.DB) *PostgresRepository[*model.Todo] {
	return NewPostgres(db, todoMapper)
}

// NewPostgresUser returns the user repository backed by Postgres.
func NewPostgresUser(db *sql.DB) *PostgresRepository[*model.User] {
	return NewPostgres(db, userMapper)
}

var todoMapper = Mapper[*model.Todo]{
	Name:       "todo",
	Table:      "todos t",
	SelectList: "t.id, t.title, t.description, t.user_id, t.is_completed, t.is_deleted",
	Join:       "JOIN users u ON u.id = t.user_id",
	IDExpr:     "t.id",
	Fields: map[string]Field{
		FieldID:          {Expr: "t.id"},
		FieldTitle:       {Expr: "t.title"},
		FieldUserID:      {Expr: "t.user_id"},
		FieldIsCompleted: {Expr: "t.is_completed"},
		FieldIsDeleted:   {Expr: "t.is_deleted"},
		FieldOwnerName:   {Expr: "u.full_name", Join: true},
	},
	Scan: scanTodo,
	Insert: `INSERT INTO todos (title, description, user_id, is_completed, is_deleted)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
	InsertArgs: func(t *model.Todo) []any {
		return []any{t.Title, t.Description, t.UserID, t.IsCompleted, t.IsDeleted}
	},
	Update: `UPDATE todos
		SET title = $1, description = $2, is_completed = $3, is_deleted = $4
		WHERE id = $5`,
	UpdateArgs: func(t *model.Todo) []any {
		return []any{t.Title, t.Description, t.IsCompleted, t.IsDeleted, t.ID}
	},
	SoftDelete: `UPDATE todos SET is_deleted = TRUE WHERE id = $1`,
	Delete:     `DELETE FROM todos WHERE id = $1`,
}

var userMapper = Mapper[*model.User]{
	Name:       "user",
	Table:      "users u",
	SelectList: "u.id, u.full_name, u.email",
	IDExpr:     "u.id",
	Fields: map[string]Field{
		FieldID:       {Expr: "u.id"},
		FieldFullName: {Expr: "u.full_name"},
		FieldEmail:    {Expr: "u.email"},
	},
	Scan: scanUser,
	Insert: `INSERT INTO users (full_name, email)
		VALUES ($1, $2)
		RETURNING id`,
	InsertArgs: func(u *model.User) []any {
		return []any{u.FullName, u.Email}
	},
	Update: `UPDATE users SET full_name = $1, email = $2 WHERE id = $3`,
	UpdateArgs: func(u *model.User) []any {
		return []any{u.FullName, u.Email, u.ID}
	},
	Delete: `DELETE FROM users WHERE id = $1`,
}

func scanTodo(row scannable) (*model.Todo, error) {
	var t model.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.UserID, &t.IsCompleted, &t.IsDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to scan todo: %w", err)
	}
	return &t, nil
}

func scanUser(row scannable) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// ensure compile-time interface compliance
var (
	_ Repository[*model.Todo] = (*PostgresRepository[*model.Todo])(nil)
	_ Repository[*model.User] = (*PostgresRepository[*model.User])(nil)
)
