package document

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"travelmate/internal/domain/document"
)

type Handler struct {
	service    document.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service document.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.patchOp(), h.patch)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*documentOutput, error) {
	parent := parentName(input.Project, input.Database)
	coll := document.Collection(input.Collection)

	doc, err := h.service.Create(ctx, parent, coll, input.DocumentID, input.Body.Fields)
	if err != nil {
		return nil, h.toHTTP(err)
	}

	return &documentOutput{Body: doc}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	parent := parentName(input.Project, input.Database)
	coll := document.Collection(input.Collection)

	resp, err := h.service.List(ctx, parent, coll, input.PageSize, input.PageToken)
	if err != nil {
		return nil, h.toHTTP(err)
	}

	return &listOutput{Body: resp}, nil
}

func (h *Handler) get(ctx context.Context, input *documentInput) (*documentOutput, error) {
	parent := parentName(input.Project, input.Database)

	doc, err := h.service.Get(ctx, parent, document.Collection(input.Collection), input.ID)
	if err != nil {
		return nil, h.toHTTP(err)
	}

	return &documentOutput{Body: doc}, nil
}

func (h *Handler) patch(ctx context.Context, input *patchInput) (*documentOutput, error) {
	parent := parentName(input.Project, input.Database)
	coll := document.Collection(input.Collection)

	doc, err := h.service.Replace(ctx, parent, coll, input.ID, input.Body.Fields, input.Exists)
	if err != nil {
		return nil, h.toHTTP(err)
	}

	return &documentOutput{Body: doc}, nil
}

func (h *Handler) delete(ctx context.Context, input *documentInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, document.Collection(input.Collection), input.ID); err != nil {
		return nil, h.toHTTP(err)
	}
	return &deleteOutput{}, nil
}

// toHTTP переводит доменные ошибки в ответы huma
func (h *Handler) toHTTP(err error) error {
	switch {
	case errors.Is(err, document.ErrNotFound):
		return huma.Error404NotFound("document not found")
	case errors.Is(err, document.ErrAlreadyExists):
		return huma.Error409Conflict("document already exists")
	case errors.Is(err, document.ErrInvalidArgument):
		return huma.Error400BadRequest(err.Error())
	default:
		h.log.Error("document operation failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
