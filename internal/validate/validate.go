// Package validate holds the client-side pre-submission checks. A value
// failing here blocks the form and never reaches the remote layer.
package validate

import (
	"regexp"
	"strings"

	"github.com/go-faster/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Display name and bio limits enforced before submission.
const (
	MinDisplayName = 3
	MaxDisplayName = 50
	MaxBio         = 500
	MinPassword    = 6
)

// Email checks basic address shape.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// Password enforces the minimum length.
func Password(password string) error {
	if len(password) < MinPassword {
		return errors.Errorf("password must be at least %d characters", MinPassword)
	}
	return nil
}

// DisplayName enforces the length bounds.
func DisplayName(name string) error {
	if n := len(name); n < MinDisplayName || n > MaxDisplayName {
		return errors.Errorf("display name must be %d-%d characters", MinDisplayName, MaxDisplayName)
	}
	return nil
}

// Bio enforces the maximum length.
func Bio(bio string) error {
	if len(bio) > MaxBio {
		return errors.Errorf("bio must be at most %d characters", MaxBio)
	}
	return nil
}

// Required rejects empty or whitespace-only values; name identifies the
// field in the message.
func Required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Errorf("%s is required", name)
	}
	return nil
}
