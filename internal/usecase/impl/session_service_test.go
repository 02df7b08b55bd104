package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plastpack/config"
	"plastpack/internal/infra/api"
	"plastpack/internal/infra/credential"
	"plastpack/internal/infra/nav"
	"plastpack/internal/usecase"
)

const loginRoute = "/admin/login"

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	return token
}

func newSessionFixture(t *testing.T, e *echo.Echo) (usecase.SessionUsecase, *credential.MemoryStore) {
	t.Helper()

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL + "/api/v1"
	cfg.API.Timeout = 5 * time.Second
	cfg.Admin.LoginRoute = loginRoute

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := credential.NewMemoryStore()
	inspector := credential.NewInspector()
	navigator := nav.NewTracker(logger)
	admin := api.NewAdmin(cfg, logger, store, inspector, navigator)

	return NewSessionService(admin, store, inspector, navigator, loginRoute, logger), store
}

func TestSessionLifecycle(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	e := echo.New()
	e.POST("/api/v1/token/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"access": token})
	})
	session, _ := newSessionFixture(t, e)

	assert.False(t, session.Status().Authenticated, "fresh store starts unauthenticated")

	require.NoError(t, session.Login(context.Background(), "admin", "secret"))

	status := session.Status()
	assert.True(t, status.Authenticated)
	assert.Equal(t, "Bearer", status.Scheme)

	require.NoError(t, session.Logout())
	assert.False(t, session.Status().Authenticated)

	// Logging out twice is harmless.
	require.NoError(t, session.Logout())
}

func TestStatus_OpaqueTokenUsesTokenScheme(t *testing.T) {
	session, store := newSessionFixture(t, echo.New())
	require.NoError(t, store.WriteToken("9c3b1f0aa8d24d93"))

	status := session.Status()
	assert.True(t, status.Authenticated)
	assert.Equal(t, "Token", status.Scheme)
}

func TestStatus_ExpiredTokenReportsUnauthenticated(t *testing.T) {
	session, store := newSessionFixture(t, echo.New())
	require.NoError(t, store.WriteToken(signedToken(t, time.Now().Add(-time.Minute))))

	assert.False(t, session.Status().Authenticated)
}

func TestLogin_BadCredentialsLeaveNoSession(t *testing.T) {
	e := echo.New()
	e.POST("/api/v1/token/", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "bad credentials"})
	})
	session, store := newSessionFixture(t, e)

	err := session.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)

	_, ok := store.ReadToken()
	assert.False(t, ok)
	assert.False(t, session.Status().Authenticated)
}
