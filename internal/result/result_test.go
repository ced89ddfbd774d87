package result_test

import (
	"encoding/json"
	"testing"

	"github.com/frhanam/todo-list-api/internal/model"
	"github.com/frhanam/todo-list-api/internal/result"
)

func TestResult_ZeroValueIsSuccessShaped(t *testing.T) {
	var res result.Result[model.Todo]

	if res.Status != result.StatusUnspecified {
		t.Errorf("expected unspecified status, got %q", res.Status)
	}
	if res.Data != nil || res.Message != "" {
		t.Error("zero value must carry no data and no message")
	}
}

func TestResult_JSONOmitsEmptyFields(t *testing.T) {
	tests := []struct {
		name string
		res  result.Result[model.Todo]
		want string
	}{
		{
			name: "message only",
			res:  result.Result[model.Todo]{Message: "there is no task with this id"},
			want: `{"message":"there is no task with this id"}`,
		},
		{
			name: "status and message",
			res: result.Result[model.Todo]{
				Status:  result.StatusNotFound,
				Message: "there is no task with this id",
			},
			want: `{"status":"not_found","message":"there is no task with this id"}`,
		},
		{
			name: "data only",
			res:  result.Result[model.Todo]{Data: &model.Todo{ID: 7, Title: "a", UserID: 1}},
			want: `{"data":{"id":7,"title":"a","description":"","user_id":1,"is_completed":false,"is_deleted":false}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.res)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
