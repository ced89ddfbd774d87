package service_test

import (
	"context"
	"testing"

	"github.com/frhanam/todo-list-api/internal/model"
	"github.com/frhanam/todo-list-api/internal/repository"
	"github.com/frhanam/todo-list-api/internal/result"
	"github.com/frhanam/todo-list-api/internal/service"
)

func TestGetUserByEmail(t *testing.T) {
	newSvc := func(t *testing.T) (*service.UserService, *repository.MemoryRepository[*model.User]) {
		t.Helper()
		users := repository.NewMemoryUser()
		users.Add(&model.User{FullName: "Alice Smith", Email: "alice@example.com"})
		users.Add(&model.User{FullName: "Bob Jones", Email: "bob@example.com"})
		if err := users.Save(context.Background()); err != nil {
			t.Fatalf("failed to seed users: %v", err)
		}
		return service.NewUserService(users), users
	}

	tests := []struct {
		name       string
		email      string
		wantStatus result.Status
		wantName   string
	}{
		{
			name:       "first user",
			email:      "alice@example.com",
			wantStatus: result.StatusSucceeded,
			wantName:   "Alice Smith",
		},
		{
			// Exact match only: the second user's email must never
			// resolve to the first.
			name:       "second user",
			email:      "bob@example.com",
			wantStatus: result.StatusSucceeded,
			wantName:   "Bob Jones",
		},
		{
			name:       "no match",
			email:      "nobody@example.com",
			wantStatus: result.StatusNotFound,
		},
		{
			name:       "substring is not a match",
			email:      "alice",
			wantStatus: result.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newSvc(t)

			res, err := svc.GetUserByEmail(context.Background(), tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if res.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, res.Status)
			}

			if tt.wantStatus == result.StatusNotFound {
				if res.Data != nil {
					t.Error("expected no data")
				}
				if res.Message != "user not found" {
					t.Errorf("unexpected message %q", res.Message)
				}
				return
			}

			if res.Data == nil {
				t.Fatal("expected data")
			}
			if res.Data.FullName != tt.wantName {
				t.Errorf("expected %q, got %q", tt.wantName, res.Data.FullName)
			}
			if res.Message != "" {
				t.Errorf("expected empty message, got %q", res.Message)
			}
		})
	}
}

func TestUserService_Close(t *testing.T) {
	svc := service.NewUserService(repository.NewMemoryUser())
	if err := svc.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
