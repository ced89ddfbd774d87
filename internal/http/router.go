package http

import (
	"net/http"

	"github.com/frhanam/todo-list-api/internal/http/handler"
	"github.com/frhanam/todo-list-api/internal/service"
)

func NewRouter(todoSvc *service.TodoService, userSvc *service.UserService) http.Handler {
	mux := http.NewServeMux()

	// Health check - intentionally outside /api/v1 for load balancer compatibility
	mux.Handle("/health", handler.Health())

	tasks := handler.NewTaskHandler(todoSvc)
	mux.Handle("/api/v1/tasks", tasks)
	mux.Handle("/api/v1/tasks/", tasks)

	mux.Handle("/api/v1/users", handler.NewUserHandler(userSvc))

	return mux
}
