// Package repository provides the generic persistence gateway used by the
// service layer. A Repository stages mutations in memory and commits them
// atomically on Save; reads go through a small composable Query value that
// each storage adapter compiles for its backend.
package repository

import (
	"context"

	"github.com/frhanam/todo-list-api/internal/model"
)

// Repository is the sole gateway to persistent storage for one entity kind.
//
// Add, Edit, and Delete only stage work; nothing touches the backing store
// until Save commits every staged mutation as one atomic unit. Absence on
// point lookups is reported through the bool, not an error — errors are
// reserved for storage-layer failures and always propagate.
type Repository[E model.Entity] interface {
	// Query returns a fresh filter value for Find and First.
	Query() *Query

	// Find materializes all entities matching q, ordered by q's order field.
	Find(ctx context.Context, q *Query) ([]E, error)

	// First returns the first entity matching q, or false when none match.
	First(ctx context.Context, q *Query) (E, bool, error)

	// GetByID looks up one entity by primary identifier.
	GetByID(ctx context.Context, id int64) (E, bool, error)

	// Add stages e for insertion. Its identifier is assigned during Save.
	Add(e E)

	// Edit stages an update replacing the stored row with e's current state.
	Edit(e E)

	// Delete stages removal of the entity with the given id. Entity kinds
	// implementing model.SoftDeletable get their flag set instead of a
	// physical delete. Deleting an absent id is not an error.
	Delete(id int64)

	// Save commits all staged mutations atomically and clears the stage.
	Save(ctx context.Context) error

	// Close releases the repository's scoped resources. Safe to call more
	// than once.
	Close() error
}

// softDeletable reports whether entity kind E carries the soft-delete
// capability. The check is purely type-based.
func softDeletable[E model.Entity]() bool {
	var zero E
	_, ok := any(zero).(model.SoftDeletable)
	return ok
}
