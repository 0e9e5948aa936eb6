package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	collectionPath = "/v1/projects/{project}/databases/{database}/documents/{collection}"
	documentPath   = collectionPath + "/{id}"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "documents-create",
		Method:        http.MethodPost,
		Path:          collectionPath,
		Summary:       "Создать документ",
		Description:   "Создает документ. При занятом documentId возвращает 409.",
		Tags:          []string{"documents"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        collectionPath,
		Summary:     "Список документов коллекции",
		Description: "Документы упорядочены по ID. Следующая страница запрашивается по nextPageToken.",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-get",
		Method:      http.MethodGet,
		Path:        documentPath,
		Summary:     "Получить документ",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) patchOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-patch",
		Method:      http.MethodPatch,
		Path:        documentPath,
		Summary:     "Заменить поля документа",
		Description: "Полностью заменяет поля. С currentDocument.exists=true отсутствующий документ дает 404, иначе создается.",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-delete",
		Method:      http.MethodDelete,
		Path:        documentPath,
		Summary:     "Удалить документ",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}
