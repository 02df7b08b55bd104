// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"plastpack/internal/domain/entity"
)

// SessionUsecase manages the admin session lifecycle: unauthenticated until
// a login succeeds, back to unauthenticated when the token expires, the
// operator logs out, or the server rejects a request.
type SessionUsecase interface {
	// Login authenticates against the catalog service and persists the
	// issued token.
	Login(ctx context.Context, username, password string) error

	// Logout discards the stored token.
	Logout() error

	// Status re-evaluates the stored token locally.
	Status() entity.SessionStatus
}
