package note

import (
	"strconv"
	"strings"

	"travelmate/internal/domain/document"
	"travelmate/internal/domain/errs"
	"travelmate/internal/domain/location"
)

// Note - заметка о поездке
type Note struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Location    string `json:"location,omitempty"`
	Coordinate  string `json:"coordinate,omitempty"`
	// CreatedAt - миллисекунды с начала эпохи в текстовом виде, у старых записей может отсутствовать
	CreatedAt string `json:"created_at,omitempty"`
}

// Input - поля, которые задает пользователь
type Input struct {
	Title       string
	Description string
	PhotoURL    string
	Location    string
	Coordinate  string
}

func (n Note) GetID() string     { return n.ID }
func (n Note) GetUserID() string { return n.UserID }

func (n Note) CreatedAtMillis() (int64, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(n.CreatedAt), 10, 64)
	return ms, err == nil
}

// Point возвращает разобранную координату, если она корректна
func (n Note) Point() (location.Coordinate, bool) {
	return location.ParseCoordinate(n.Coordinate)
}

// SearchFields - поля для текстового поиска
func (n Note) SearchFields() []string {
	return []string{n.Title, n.Description, n.Location}
}

func FromRecord(rec document.Record) Note {
	return Note{
		ID:          rec.ID,
		UserID:      rec.Text("user_id"),
		Title:       rec.Text("title"),
		Description: rec.Text("description"),
		PhotoURL:    rec.Text("photo_url"),
		Location:    rec.Text("location"),
		Coordinate:  rec.Text("coordinate"),
		CreatedAt:   rec.Text("created_at"),
	}
}

// Fields - полный набор полей для записи в хранилище
func (n Note) Fields() map[string]any {
	return map[string]any{
		"created_at":  n.CreatedAt,
		"user_id":     n.UserID,
		"title":       n.Title,
		"description": n.Description,
		"photo_url":   n.PhotoURL,
		"location":    n.Location,
		"coordinate":  n.Coordinate,
	}
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.UserID) == "" {
		return errs.Required("user_id")
	}
	if strings.TrimSpace(n.Title) == "" {
		return errs.Required("title")
	}
	if strings.TrimSpace(n.Description) == "" {
		return errs.Required("description")
	}
	return nil
}
