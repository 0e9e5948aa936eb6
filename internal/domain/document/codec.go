package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode превращает сетевой документ в плоскую запись.
// Идентификатор берется из последнего сегмента имени документа.
func Decode(doc Document) Record {
	rec := Record{
		ID:     DocumentID(doc.Name),
		Fields: make(map[string]any, len(doc.Fields)),
	}

	for name, v := range doc.Fields {
		rec.Fields[name] = v.Native()
	}

	return rec
}

// DecodeAll декодирует список документов с сохранением порядка
func DecodeAll(docs []Document) []Record {
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, Decode(doc))
	}
	return records
}

// Encode оборачивает каждое значение в stringValue
func Encode(fields map[string]any) map[string]Value {
	out := make(map[string]Value, len(fields))
	for name, v := range fields {
		out[name] = StringValue(FormatScalar(v))
	}
	return out
}

// EncodeRecord кодирует поля записи, идентификатор в поля не попадает
func EncodeRecord(rec Record) map[string]Value {
	return Encode(rec.Fields)
}

// DocumentID возвращает последний сегмент пути документа
func DocumentID(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// StringValue создает строковое значение
func StringValue(s string) Value {
	return Value{StringValue: &s}
}

// Native возвращает первое присутствующее значение из string, integer, double, boolean.
// Неизвестные и пустые теги дают nil.
func (v Value) Native() any {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.IntegerValue != nil:
		n, err := strconv.ParseInt(*v.IntegerValue, 10, 64)
		if err != nil {
			return nil
		}
		return n
	case v.DoubleValue != nil:
		return *v.DoubleValue
	case v.BooleanValue != nil:
		return *v.BooleanValue
	default:
		return nil
	}
}

// FormatScalar приводит скалярное значение к текстовому виду
func FormatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Text возвращает значение поля в текстовом виде, отсутствующее поле дает пустую строку
func (r Record) Text(name string) string {
	v, ok := r.Fields[name]
	if !ok {
		return ""
	}
	return FormatScalar(v)
}
