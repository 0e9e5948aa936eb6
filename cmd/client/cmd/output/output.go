// Package output - общие функции вывода результатов команд.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	FormatSimple = "simple"
	FormatTable  = "table"
	FormatJSON   = "json"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow)
	dimColor  = color.New(color.Faint)
	botColor  = color.New(color.FgCyan)
)

// Writer - куда пишут команды. Подменяется в тестах.
var Writer io.Writer = os.Stdout

func Success(format string, args ...any) {
	okColor.Fprintf(Writer, "✓ "+format+"\n", args...)
}

func Warn(format string, args ...any) {
	warnColor.Fprintf(Writer, "⚠️  "+format+"\n", args...)
}

func Dim(format string, args ...any) string {
	return dimColor.Sprintf(format, args...)
}

func Bot(format string, args ...any) string {
	return botColor.Sprintf(format, args...)
}

func JSON(v any) error {
	encoder := json.NewEncoder(Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Table выводит строки через tabwriter с заголовком и разделителем
func Table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(Writer, 0, 0, 2, ' ', 0)
	writeRow(w, header)

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(w, sep)

	for _, r := range rows {
		writeRow(w, r)
	}
	return w.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for _, c := range cells {
		fmt.Fprint(w, c, "\t")
	}
	fmt.Fprintln(w)
}

// Truncate обрезает строку до length символов
func Truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	r := []rune(s)
	return string(r[:length-3]) + "..."
}

// ValidFormat проверяет значение флага --format
func ValidFormat(f string) error {
	switch f {
	case FormatSimple, FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("неизвестный формат вывода: %s (simple, table, json)", f)
	}
}

// OrDash заменяет пустое значение прочерком
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Millis форматирует метку времени в миллисекундах в локальном часовом поясе
func Millis(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}
