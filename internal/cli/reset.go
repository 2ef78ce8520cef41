package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/joydairy/internal/db"
	"github.com/terraincognita07/joydairy/internal/security"
	"github.com/terraincognita07/joydairy/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

var errStdinUnavailable = errors.New("stdin unavailable")

type ResetPasswordOptions struct {
	Email string
	// Prompt reads the new password from Stdin instead of generating one.
	Prompt bool
	Stdin  *os.File
}

func RunResetPasswordCommand(database *gorm.DB, options ResetPasswordOptions, out io.Writer) error {
	if strings.TrimSpace(options.Email) == "" {
		return errors.New("email is required")
	}

	password, generated, err := resolveNewPassword(options, out)
	if err != nil {
		return err
	}

	authService := services.NewAuthService(db.NewRepositories(database).Users)
	user, err := authService.ResetPassword(options.Email, password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("user %s not found", strings.ToLower(strings.TrimSpace(options.Email)))
		}
		return err
	}

	fmt.Fprintf(out, "Password reset for %s\n", user.Email)
	if generated {
		fmt.Fprintf(out, "Temporary password: %s\n", password)
	}
	return nil
}

func resolveNewPassword(options ResetPasswordOptions, out io.Writer) (string, bool, error) {
	if !options.Prompt {
		password, err := security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return password, true, nil
	}

	fmt.Fprint(out, "New password: ")
	password, err := readSecretLine(options.Stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return "", false, err
	}
	return password, false, nil
}

func readLine(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errStdinUnavailable
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
