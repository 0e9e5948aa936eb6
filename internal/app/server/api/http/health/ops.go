package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Проверка эмулятора",
		Description: "Проверяет, что хранилище документов отвечает. Недоступное хранилище дает 503.",
		Tags:        []string{"health"},
		Errors:      []int{http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}
