package chat

import (
	"strconv"
	"strings"

	"travelmate/internal/domain/document"
	"travelmate/internal/domain/errs"
)

// Role - автор сообщения
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleBot
}

// Message - сообщение переписки с ассистентом
type Message struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (m Message) GetID() string     { return m.ID }
func (m Message) GetUserID() string { return m.UserID }

func (m Message) CreatedAtMillis() (int64, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(m.CreatedAt), 10, 64)
	return ms, err == nil
}

func FromRecord(rec document.Record) Message {
	return Message{
		ID:        rec.ID,
		UserID:    rec.Text("user_id"),
		Role:      Role(rec.Text("role")),
		Text:      rec.Text("text"),
		CreatedAt: rec.Text("created_at"),
	}
}

func (m Message) Fields() map[string]any {
	return map[string]any{
		"user_id":    m.UserID,
		"role":       string(m.Role),
		"text":       m.Text,
		"created_at": m.CreatedAt,
	}
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.UserID) == "" {
		return errs.Required("user_id")
	}
	if !m.Role.Valid() {
		return ErrInvalidRole
	}
	if strings.TrimSpace(m.Text) == "" {
		return errs.Required("text")
	}
	return nil
}
