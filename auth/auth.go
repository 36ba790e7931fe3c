// Package auth implements the mock ElectroHub sign-in rule and the
// session tokens that carry a shopper's identity between requests.
package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/electrohub/storefront-api/models"
)

// ErrInvalidCredentials is returned for any email/password pair the
// mock rule rejects. It is user-visible and recoverable.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	adminEmail    = "admin@electrohub.com"
	adminPassword = "admin123"
	minPassword   = 6
)

// SignIn applies the mock authentication rule: the fixed admin
// credentials yield the admin identity; any other non-empty email with
// a password of at least six characters yields a standard user named
// after the email's local part; everything else fails.
func SignIn(email, password string) (models.User, error) {
	if email == adminEmail && password == adminPassword {
		return models.User{
			ID:    "admin-1",
			Name:  "Admin User",
			Email: email,
			Role:  models.RoleAdmin,
		}, nil
	}

	if email != "" && len(password) >= minPassword {
		return models.User{
			ID:    "user-" + uuid.NewString(),
			Name:  localPart(email),
			Email: email,
			Role:  models.RoleUser,
		}, nil
	}

	return models.User{}, ErrInvalidCredentials
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
