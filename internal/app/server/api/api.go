// Эмулятор документного хранилища с REST-форматом Firestore.

// POST   /v1/projects/{project}/databases/{database}/documents/{collection}       # Создать документ (?documentId=)
// GET    /v1/projects/{project}/databases/{database}/documents/{collection}       # Список (?pageSize=&pageToken=)
// GET    /v1/projects/{project}/databases/{database}/documents/{collection}/{id}  # Получить документ
// PATCH  /v1/projects/{project}/databases/{database}/documents/{collection}/{id}  # Заменить поля (?currentDocument.exists=)
// DELETE /v1/projects/{project}/databases/{database}/documents/{collection}/{id}  # Удалить документ
// GET    /api/v1/health

package api

import (
	documentAPI "travelmate/internal/app/server/api/http/document"
	healthAPI "travelmate/internal/app/server/api/http/health"
	"travelmate/internal/app/server/api/http/middleware"
	"travelmate/internal/app/server/api/http/middleware/logger"
	"travelmate/internal/domain/document"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Document *documentAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(repo document.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("TravelMate Document Store", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(repo, log)
	h.Health.SetupRoutes(API)
	h.Document.SetupRoutes(API)

	return mux
}

func handlers(repo document.Repository, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(repo, log, middlewares.GetAllAndClear())

	documentService := document.NewService(repo, log)
	middlewares.Add(loggerMW.Middleware())
	documentHandler := documentAPI.NewHandler(documentService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Document: documentHandler,
	}
}
