package logger

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const documentsSegment = "/documents/"

// Logger пишет по строке на каждый запрос к эмулятору
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware логирует метод, путь, статус и длительность. Для запросов к документам
// добавляются коллекция и id. Ответы 5xx пишутся с уровнем Error, 4xx с Warn.
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		method := ctx.Method()
		path := ctx.URL().Path

		next(ctx)

		status := ctx.Status()
		attrs := []any{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", ctx.RemoteAddr()),
		}
		if collection, id := documentRef(path); collection != "" {
			attrs = append(attrs, slog.String("collection", collection))
			if id != "" {
				attrs = append(attrs, slog.String("doc_id", id))
			}
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.log.Error("HTTP request", attrs...)
		case status >= http.StatusBadRequest:
			l.log.Warn("HTTP request", attrs...)
		default:
			l.log.Info("HTTP request", attrs...)
		}
	}
}

// documentRef выделяет коллекцию и id из пути .../documents/{collection}[/{id}]
func documentRef(path string) (collection, id string) {
	i := strings.Index(path, documentsSegment)
	if i < 0 {
		return "", ""
	}
	rest := strings.Trim(path[i+len(documentsSegment):], "/")
	collection, id, _ = strings.Cut(rest, "/")
	return collection, id
}
