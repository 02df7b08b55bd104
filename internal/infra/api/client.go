// Package api is the HTTP access layer for the external catalog service.
// It exposes a public, unauthenticated client for the storefront reads and
// an admin client whose requests carry the stored credential.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"plastpack/config"
	"plastpack/internal/domain/entity"
	apperrors "plastpack/internal/domain/errors"
	"plastpack/internal/domain/service"
	"plastpack/internal/errors"
)

const contentTypeJSON = "application/json"

// Client carries the pieces shared by the public and admin variants: the
// configured base URL, the underlying HTTP client and the query encoder.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	encoder    *schema.Encoder
	validate   *validator.Validate
}

func newClient(cfg *config.Config, logger *slog.Logger, transport http.RoundTripper) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.API.Timeout,
			Transport: transport,
		},
		baseURL:  strings.TrimRight(cfg.API.BaseURL, "/"),
		logger:   logger,
		encoder:  schema.NewEncoder(),
		validate: validator.New(),
	}
}

// PublicClient serves the unauthenticated storefront reads.
type PublicClient struct {
	*Client
}

// NewPublic is the constructor for PublicClient.
func NewPublic(cfg *config.Config, logger *slog.Logger) *PublicClient {
	transport := &requestIDTransport{base: http.DefaultTransport}

	return &PublicClient{Client: newClient(cfg, logger, transport)}
}

// AdminClient adds authenticated CRUD on top of the shared read surface.
// Every request passes the credential interceptor, and 401/403 responses
// clear the stored token and send the operator back to the login view.
type AdminClient struct {
	*Client
	store service.CredentialStore
}

// NewAdmin is the constructor for AdminClient.
func NewAdmin(
	cfg *config.Config,
	logger *slog.Logger,
	store service.CredentialStore,
	inspector service.TokenInspector,
	navigator service.Navigator,
) *AdminClient {
	transport := &requestIDTransport{base: &authTransport{
		base:       http.DefaultTransport,
		store:      store,
		inspector:  inspector,
		navigator:  navigator,
		loginRoute: cfg.Admin.LoginRoute,
		logger:     logger,
	}}

	return &AdminClient{
		Client: newClient(cfg, logger, transport),
		store:  store,
	}
}

// send performs one request and returns the raw response body. Any non-2xx
// status becomes an *apperrors.APIError preserving the status code and body;
// transport failures are wrapped and surface immediately, there are no
// retries.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s", method, path)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s %s response", method, path)
	}

	c.logger.Debug("api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apperrors.FromResponse(method, path, resp.StatusCode, raw)
	}

	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.send(ctx, http.MethodGet, path, query, contentTypeJSON, nil)
}

// filterQuery encodes a ProductFilter into query parameters. Zero-valued
// fields stay out of the query entirely.
func (c *Client) filterQuery(filter entity.ProductFilter) (url.Values, error) {
	query := url.Values{}
	if err := c.encoder.Encode(&filter, query); err != nil {
		return nil, errors.Wrap(err, "encode product filter")
	}

	return query, nil
}
