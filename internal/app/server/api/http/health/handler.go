package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	statusOK    = "OK"
	pingTimeout  = 2 * time.Second
)

// Pinger - хранилище документов, доступность которого проверяет health
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	storage    Pinger
	log        *slog.Logger
	middleware huma.Middlewares
	now        func() time.Time
}

func NewHandler(storage Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		log:        log.With(slog.String("component", "health_handler")),
		middleware: middleware,
		now:        time.Now,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := h.now()
	if err := h.storage.Ping(ctx); err != nil {
		h.log.Error("Хранилище документов недоступно", "error", err)
		return nil, huma.Error503ServiceUnavailable("storage unavailable")
	}

	return &Output{
		Body: Response{
			Status:  statusOK,
			Storage: statusOK,
			PingMS:  h.now().Sub(start).Milliseconds(),
		},
	}, nil
}
