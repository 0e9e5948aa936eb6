package document

import "time"

// Collection - имя коллекции документного хранилища
type Collection string

const (
	CollectionUsers    Collection = "users"
	CollectionNotes    Collection = "travel_note"
	CollectionWishlist Collection = "travel_wishlist"
	CollectionChat     Collection = "chat"
)

// Value - типизированное значение поля в формате REST API хранилища.
// Заполнено ровно одно из полей.
type Value struct {
	StringValue  *string  `json:"stringValue,omitempty"`
	IntegerValue *string  `json:"integerValue,omitempty"`
	DoubleValue  *float64 `json:"doubleValue,omitempty"`
	BooleanValue *bool    `json:"booleanValue,omitempty"`
}

// Document - документ в том виде, в каком он передается по сети
type Document struct {
	Name       string           `json:"name,omitempty"`
	Fields     map[string]Value `json:"fields"`
	CreateTime string           `json:"createTime,omitempty"`
	UpdateTime string           `json:"updateTime,omitempty"`
}

// ListResponse - ответ на запрос всей коллекции
type ListResponse struct {
	Documents     []Document `json:"documents,omitempty"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// Record - декодированный документ: идентификатор плюс плоские поля.
// Значения полей: string, int64, float64, bool или nil.
type Record struct {
	ID     string
	Fields map[string]any
}

// StoredDocument - документ в хранилище эмулятора
type StoredDocument struct {
	Collection Collection
	ID         string
	Fields     map[string]Value
	CreateTime time.Time
	UpdateTime time.Time
}

// Page - страница документов коллекции
type Page struct {
	Documents     []StoredDocument
	NextPageToken string
}
