package document

import (
	"travelmate/internal/domain/document"
)

type createInput struct {
	Project    string `path:"project" doc:"ID проекта"`
	Database   string `path:"database" doc:"ID базы данных"`
	Collection string `path:"collection" doc:"ID коллекции"`
	DocumentID string `query:"documentId" doc:"ID документа, без него генерируется"`
	Body       document.Document
}

type listInput struct {
	Project    string `path:"project" doc:"ID проекта"`
	Database   string `path:"database" doc:"ID базы данных"`
	Collection string `path:"collection" doc:"ID коллекции"`
	PageSize   int    `query:"pageSize" minimum:"0" doc:"Размер страницы"`
	PageToken  string `query:"pageToken" doc:"Токен следующей страницы"`
}

type documentInput struct {
	Project    string `path:"project" doc:"ID проекта"`
	Database   string `path:"database" doc:"ID базы данных"`
	Collection string `path:"collection" doc:"ID коллекции"`
	ID         string `path:"id" doc:"ID документа"`
}

type patchInput struct {
	Project    string `path:"project" doc:"ID проекта"`
	Database   string `path:"database" doc:"ID базы данных"`
	Collection string `path:"collection" doc:"ID коллекции"`
	ID         string `path:"id" doc:"ID документа"`
	Exists     bool   `query:"currentDocument.exists" doc:"Требовать существование документа"`
	Body       document.Document
}

type documentOutput struct {
	Body document.Document
}

type listOutput struct {
	Body document.ListResponse
}

type deleteOutput struct {
	Body struct{}
}

func parentName(project, database string) string {
	return "projects/" + project + "/databases/" + database + "/documents"
}
