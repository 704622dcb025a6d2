package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/security"
	"github.com/terraincognita07/aurora/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

type PasswordResetter interface {
	ResetPassword(email string, password string) error
}

func RunResetPasswordCommand(database *gorm.DB, email string, prompt PasswordPrompt, out io.Writer) error {
	authService := services.NewAuthService(db.NewProfileRepository(database))
	return ResetPassword(authService, email, prompt, out)
}

// ResetPassword replaces the password of the account behind email. When the
// prompt yields nothing a temporary password is generated and printed once.
func ResetPassword(resetter PasswordResetter, email string, prompt PasswordPrompt, out io.Writer) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if normalizedEmail == "" {
		return fmt.Errorf("invalid email address %q", strings.TrimSpace(email))
	}

	password := ""
	if prompt != nil {
		value, err := prompt()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = value
	}

	generated := password == ""
	if generated {
		temporary, err := security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		password = temporary
	}

	if err := resetter.ResetPassword(normalizedEmail, password); err != nil {
		switch {
		case errors.Is(err, services.ErrAuthProfileNotFound):
			return fmt.Errorf("user %s not found", normalizedEmail)
		case errors.Is(err, services.ErrWeakPassword):
			return errors.New("password must have at least 8 characters with upper case, lower case and a digit")
		default:
			return fmt.Errorf("update password: %w", err)
		}
	}

	fmt.Fprintln(out, "Password reset successful")
	if generated {
		fmt.Fprintf(out, "Temporary password: %s\n", password)
	}
	return nil
}
