package model

// Todo is a task owned by a user. Rows are never removed physically;
// deletion sets IsDeleted and listing queries filter it out.
type Todo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
	IsCompleted bool   `json:"is_completed"`
	IsDeleted   bool   `json:"is_deleted"`
}

func (t *Todo) EntityID() int64      { return t.ID }
func (t *Todo) SetEntityID(id int64) { t.ID = id }

func (t *Todo) MarkDeleted()  { t.IsDeleted = true }
func (t *Todo) Deleted() bool { return t.IsDeleted }

// GetTodoResult is the read-only listing projection of a Todo. It excludes
// the soft-delete flag and is never persisted.
type GetTodoResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
	IsCompleted bool   `json:"is_completed"`
}

var (
	_ Entity        = (*Todo)(nil)
	_ SoftDeletable = (*Todo)(nil)
)
