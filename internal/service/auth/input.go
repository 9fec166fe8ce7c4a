package auth

import (
	"strings"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	Preferences []string
}

// Normalize lowercases and trims the email, trims the name and phone,
// and reduces preferences to a deduplicated set of non-empty values.
// Preferences is never nil afterwards.
func (i *RegisterInput) Normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Name = strings.TrimSpace(i.Name)
	i.Phone = strings.TrimSpace(i.Phone)

	prefs := make([]string, 0, len(i.Preferences))
	seen := make(map[string]struct{}, len(i.Preferences))
	for _, p := range i.Preferences {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		prefs = append(prefs, p)
	}
	i.Preferences = prefs
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") || len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 6 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > 72 {
		// bcrypt input cap
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if len(i.Preferences) > 20 {
		errs = append(errs, domain.FieldError{Field: "preferences", Message: "too many"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Normalize lowercases and trims the email.
func (i *LoginInput) Normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
