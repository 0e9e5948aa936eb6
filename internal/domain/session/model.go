package session

// Key - ключ локального хранилища, под которым лежит сессия
const Key = "@travelmate/user_session"

// Session - указатель на текущего пользователя. Секретов не содержит.
type Session struct {
	UserID string `json:"user_id"`
}

func (s Session) Valid() bool {
	return s.UserID != ""
}

type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}
