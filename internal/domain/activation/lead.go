package activation

import (
	"regexp"
	"strings"

	"golden-key-funnel/internal/pkg/errs"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Lead is the contact captured on step one of the activation form.
type Lead struct {
	FirstName string
	Email     string
}

func NewLead(firstName, email string) (Lead, error) {
	l := Lead{
		FirstName: strings.TrimSpace(firstName),
		Email:     strings.TrimSpace(email),
	}
	if !l.IsComplete() {
		return Lead{}, errs.ErrValidationRefused
	}
	if !IsValidEmail(l.Email) {
		return Lead{}, errs.ErrInvalidEmail
	}
	return l, nil
}

func (l Lead) IsComplete() bool {
	return l.FirstName != "" && l.Email != ""
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
