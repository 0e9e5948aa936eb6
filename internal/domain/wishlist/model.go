package wishlist

import (
	"strconv"
	"strings"

	"travelmate/internal/domain/document"
	"travelmate/internal/domain/errs"
	"travelmate/internal/domain/location"
)

// Entry - место, которое пользователь хочет посетить
type Entry struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	PlaceName  string `json:"place_name"`
	Location   string `json:"location,omitempty"`
	Coordinate string `json:"coordinate,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type Input struct {
	PlaceName  string
	Location   string
	Coordinate string
}

func (e Entry) GetID() string     { return e.ID }
func (e Entry) GetUserID() string { return e.UserID }

func (e Entry) CreatedAtMillis() (int64, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(e.CreatedAt), 10, 64)
	return ms, err == nil
}

func (e Entry) Point() (location.Coordinate, bool) {
	return location.ParseCoordinate(e.Coordinate)
}

func (e Entry) SearchFields() []string {
	return []string{e.PlaceName, e.Location}
}

func FromRecord(rec document.Record) Entry {
	return Entry{
		ID:         rec.ID,
		UserID:     rec.Text("user_id"),
		PlaceName:  rec.Text("place_name"),
		Location:   rec.Text("location"),
		Coordinate: rec.Text("coordinate"),
		CreatedAt:  rec.Text("created_at"),
	}
}

func (e Entry) Fields() map[string]any {
	return map[string]any{
		"created_at": e.CreatedAt,
		"user_id":    e.UserID,
		"place_name": e.PlaceName,
		"location":   e.Location,
		"coordinate": e.Coordinate,
	}
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return errs.Required("user_id")
	}
	if strings.TrimSpace(e.PlaceName) == "" {
		return errs.Required("place_name")
	}
	return nil
}
