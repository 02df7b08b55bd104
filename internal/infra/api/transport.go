package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"plastpack/internal/domain/service"
)

const (
	headerXRequestID    = "X-Request-ID"
	headerAuthorization = "Authorization"

	adminSectionPrefix = "/admin"
)

// requestIDTransport stamps every outgoing request with an X-Request-ID so
// client and server logs can be correlated.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get(headerXRequestID) == "" {
		req.Header.Set(headerXRequestID, uuid.New().String())
	}

	return t.base.RoundTrip(req)
}

// authTransport is the admin request interceptor. When the store holds a
// valid token it attaches the derived Authorization header; otherwise the
// request goes out bare so the server's rejection stays observable instead
// of being masked by a client-side error.
//
// On 401/403 it clears the stored credential and redirects to the login
// view, then lets the error keep propagating to the caller.
type authTransport struct {
	base       http.RoundTripper
	store      service.CredentialStore
	inspector  service.TokenInspector
	navigator  service.Navigator
	loginRoute string
	logger     *slog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, ok := t.store.ReadToken(); ok && t.inspector.IsValid(token) {
		req = req.Clone(req.Context())
		req.Header.Set(headerAuthorization, t.inspector.AuthHeaderValue(token))
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.onAuthFailure(resp.StatusCode)
	}

	return resp, nil
}

// onAuthFailure clears the credential unconditionally but redirects only
// when the operator is inside the admin section and not already on the
// login view, so a failed login attempt cannot redirect in a loop.
func (t *authTransport) onAuthFailure(status int) {
	_ = t.store.Clear()

	location := t.navigator.Location()
	if !strings.HasPrefix(location, adminSectionPrefix) || location == t.loginRoute {
		return
	}

	t.logger.Warn("admin session rejected, returning to login",
		slog.Int("status", status),
		slog.String("location", location),
	)
	t.navigator.Navigate(t.loginRoute)
}
