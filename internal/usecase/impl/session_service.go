// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"plastpack/internal/domain/entity"
	"plastpack/internal/domain/service"
	"plastpack/internal/infra/api"
	"plastpack/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	admin      *api.AdminClient
	store      service.CredentialStore
	inspector  service.TokenInspector
	navigator  service.Navigator
	loginRoute string
	logger     *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	admin *api.AdminClient,
	store service.CredentialStore,
	inspector service.TokenInspector,
	navigator service.Navigator,
	loginRoute string,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		admin:      admin,
		store:      store,
		inspector:  inspector,
		navigator:  navigator,
		loginRoute: loginRoute,
		logger:     logger,
	}
}

// Login authenticates and persists the issued token. The navigator is moved
// onto the login view first so a rejected credential cannot trigger the
// redirect-to-login reaction against the view we are already on.
func (srv *sessionService) Login(ctx context.Context, username, password string) error {
	srv.navigator.Navigate(srv.loginRoute)

	token, err := srv.admin.Login(ctx, username, password)
	if err != nil {
		return err
	}

	srv.logger.Info("admin login succeeded",
		slog.String("username", username),
		slog.String("scheme", schemeOf(srv.inspector.AuthHeaderValue(token))),
	)

	return nil
}

// Logout discards the stored token. Idempotent.
func (srv *sessionService) Logout() error {
	return srv.store.Clear()
}

// Status re-evaluates the stored token. No network round-trip: persisted
// storage alone decides, and the next real request confirms or revokes it.
func (srv *sessionService) Status() entity.SessionStatus {
	token, ok := srv.store.ReadToken()
	if !ok || !srv.inspector.IsValid(token) {
		return entity.SessionStatus{Authenticated: false}
	}

	return entity.SessionStatus{
		Authenticated: true,
		Scheme:        schemeOf(srv.inspector.AuthHeaderValue(token)),
	}
}

func schemeOf(headerValue string) string {
	scheme, _, _ := strings.Cut(headerValue, " ")

	return scheme
}
