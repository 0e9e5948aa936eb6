package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"travelmate/cmd/client/cmd/output"
)

// AuthCmd - родительская команда для всех операций с авторизацией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Регистрация, вход, выход и смена пароля.`,
}

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) (string, error) {
	fmt.Fprint(output.Writer, prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readPassword читает пароль без эха, если stdin - терминал
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(prompt)
	}

	fmt.Fprint(output.Writer, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(output.Writer)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}
