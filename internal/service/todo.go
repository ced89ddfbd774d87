// Package service implements the business operations of the task tracker.
// Every operation returns a result.Result envelope for expected business
// conditions; the error return carries storage failures only and is never
// used for a business outcome.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/frhanam/todo-list-api/internal/model"
	"github.com/frhanam/todo-list-api/internal/repository"
	"github.com/frhanam/todo-list-api/internal/result"
)

type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput is a full replacement of a task's mutable state, not a
// partial patch: callers must supply the complete current values or they
// will be clobbered.
type UpdateTaskInput struct {
	ID          int64
	Title       string
	Description string
	IsCompleted bool
	IsDeleted   bool
}

// TodoService is stateless: every call fetches what it needs fresh from
// the repositories, so independent instances can serve concurrent calls
// without coordination.
type TodoService struct {
	todos repository.Repository[*model.Todo]
	users repository.Repository[*model.User]
}

func NewTodoService(todos repository.Repository[*model.Todo], users repository.Repository[*model.User]) *TodoService {
	return &TodoService{todos: todos, users: users}
}

// CreateTask stores a new task for userID. A zero userID is the
// unauthenticated sentinel and is rejected before anything is staged.
// The created task is not echoed back; that asymmetry is part of the
// public contract.
func (s *TodoService) CreateTask(ctx context.Context, input CreateTaskInput, userID int64) (result.Result[model.GetTodoResult], error) {
	if userID == 0 {
		return result.Result[model.GetTodoResult]{
			Status:  result.StatusNotForUser,
			Message: "forbidden action",
		}, nil
	}

	task := &model.Todo{
		Title:       input.Title,
		Description: input.Description,
		UserID:      userID,
	}

	s.todos.Add(task)
	if err := s.todos.Save(ctx); err != nil {
		return result.Result[model.GetTodoResult]{}, fmt.Errorf("failed to create task: %w", err)
	}

	return result.Result[model.GetTodoResult]{Message: "task added successfully"}, nil
}

// GetAllTasks lists every task whose soft-delete flag is unset. An empty
// set is a success with an explanatory message, not an error.
func (s *TodoService) GetAllTasks(ctx context.Context) (result.Result[[]model.GetTodoResult], error) {
	q := s.todos.Query().
		Where(repository.FieldIsDeleted, repository.OpEq, false).
		OrderBy(repository.FieldID).
		NoTracking()

	tasks, err := s.todos.Find(ctx, q)
	if err != nil {
		return result.Result[[]model.GetTodoResult]{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		return result.Result[[]model.GetTodoResult]{Message: "there is no task yet"}, nil
	}

	out := projectTodos(tasks)
	return result.Result[[]model.GetTodoResult]{Data: &out}, nil
}

// GetTasksByUserID lists the visible tasks owned by userID.
func (s *TodoService) GetTasksByUserID(ctx context.Context, userID int64) (result.Result[[]model.GetTodoResult], error) {
	q := s.todos.Query().
		Where(repository.FieldUserID, repository.OpEq, userID).
		Where(repository.FieldIsDeleted, repository.OpEq, false).
		OrderBy(repository.FieldID)

	tasks, err := s.todos.Find(ctx, q)
	if err != nil {
		return result.Result[[]model.GetTodoResult]{}, fmt.Errorf("failed to list tasks for user: %w", err)
	}

	if len(tasks) == 0 {
		return result.Result[[]model.GetTodoResult]{Message: "there is no task for this user"}, nil
	}

	out := projectTodos(tasks)
	return result.Result[[]model.GetTodoResult]{Data: &out}, nil
}

// GetTasksByUserName lists visible tasks whose owner's full name contains
// pattern, case-insensitively. The owner_name field navigates to the users
// table, so the storage adapter performs the join.
func (s *TodoService) GetTasksByUserName(ctx context.Context, pattern string) (result.Result[[]model.GetTodoResult], error) {
	q := s.todos.Query().
		Where(repository.FieldOwnerName, repository.OpContainsFold, pattern).
		Where(repository.FieldIsDeleted, repository.OpEq, false).
		OrderBy(repository.FieldID).
		NoTracking()

	tasks, err := s.todos.Find(ctx, q)
	if err != nil {
		return result.Result[[]model.GetTodoResult]{}, fmt.Errorf("failed to list tasks by user name: %w", err)
	}

	if len(tasks) == 0 {
		return result.Result[[]model.GetTodoResult]{Message: "there is no task"}, nil
	}

	out := projectTodos(tasks)
	return result.Result[[]model.GetTodoResult]{Data: &out}, nil
}

// GetTaskByID returns the full task entity, soft-deleted or not.
func (s *TodoService) GetTaskByID(ctx context.Context, id int64) (result.Result[model.Todo], error) {
	task, ok, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return result.Result[model.Todo]{}, fmt.Errorf("failed to get task: %w", err)
	}
	if !ok {
		return result.Result[model.Todo]{Message: "there is no task with this id"}, nil
	}
	return result.Result[model.Todo]{Data: task}, nil
}

// UpdateTask replaces all four mutable fields of an existing task. A
// missing id is NotFound; unlike DeleteTask, update only modifies what is
// present. The updated task is not echoed back.
func (s *TodoService) UpdateTask(ctx context.Context, input UpdateTaskInput) (result.Result[model.Todo], error) {
	res, err := s.GetTaskByID(ctx, input.ID)
	if err != nil {
		return result.Result[model.Todo]{}, err
	}
	if res.Data == nil {
		return result.Result[model.Todo]{
			Status:  result.StatusNotFound,
			Message: "there is no task with this id",
		}, nil
	}

	task := res.Data
	task.Title = input.Title
	task.Description = input.Description
	task.IsCompleted = input.IsCompleted
	task.IsDeleted = input.IsDeleted

	s.todos.Edit(task)
	if err := s.todos.Save(ctx); err != nil {
		return result.Result[model.Todo]{}, fmt.Errorf("failed to update task: %w", err)
	}

	return result.Result[model.Todo]{
		Status:  result.StatusSucceeded,
		Message: "task updated successfully",
	}, nil
}

// DeleteTask soft-deletes a task without checking it exists first: delete
// means "ensure absent", so a missing or already-deleted id still succeeds
// and repeated deletes are idempotent.
func (s *TodoService) DeleteTask(ctx context.Context, id int64) (result.Result[model.Todo], error) {
	s.todos.Delete(id)
	if err := s.todos.Save(ctx); err != nil {
		return result.Result[model.Todo]{}, fmt.Errorf("failed to delete task: %w", err)
	}

	return result.Result[model.Todo]{
		Status:  result.StatusSucceeded,
		Message: "task deleted successfully",
	}, nil
}

// Close releases both repositories. Repository closes are idempotent, so
// calling Close more than once is safe.
func (s *TodoService) Close() error {
	return errors.Join(s.todos.Close(), s.users.Close())
}

func projectTodos(tasks []*model.Todo) []model.GetTodoResult {
	out := make([]model.GetTodoResult, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, model.GetTodoResult{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			UserID:      t.UserID,
			IsCompleted: t.IsCompleted,
		})
	}
	return out
}
