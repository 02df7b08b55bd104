package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plastpack/config"
	"plastpack/internal/domain/entity"
	apperrors "plastpack/internal/domain/errors"
	"plastpack/internal/infra/credential"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 5 * time.Second
	cfg.Admin.LoginRoute = "/admin/login"

	return cfg
}

// fakeNavigator records every navigation so tests can assert the redirect
// fired exactly once, or not at all.
type fakeNavigator struct {
	mu       sync.Mutex
	location string
	moves    []string
}

func (n *fakeNavigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.location
}

func (n *fakeNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.moves = append(n.moves, route)
	n.location = route
}

func (n *fakeNavigator) recorded() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.moves...)
}

func signedTestToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	return token
}

// newAdminFixture wires an AdminClient against a fake catalog service.
func newAdminFixture(t *testing.T, e *echo.Echo, location string) (*AdminClient, *credential.FileStore, *fakeNavigator) {
	t.Helper()

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	store := credential.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
	navigator := &fakeNavigator{location: location}
	admin := NewAdmin(testConfig(server.URL+"/api/v1"), testLogger(), store, credential.NewInspector(), navigator)

	return admin, store, navigator
}

func newPublicFixture(t *testing.T, e *echo.Echo) *PublicClient {
	t.Helper()

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return NewPublic(testConfig(server.URL+"/api/v1"), testLogger())
}

func TestListCategories_UnwrapsEnvelope(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/categories/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"count": 2,
			"results": []map[string]any{
				{"id": 1, "category_name": "PET preforms"},
				{"id": 2, "category_name": "Caps"},
			},
		})
	})
	client := newPublicFixture(t, e)

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "PET preforms", categories[0].CategoryName)
	assert.Equal(t, int64(2), categories[1].ID)
}

func TestListCategories_BareArray(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/categories/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []map[string]any{
			{"id": 7, "category_name": "Handles"},
		})
	})
	client := newPublicFixture(t, e)

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(7), categories[0].ID)
}

func TestListCategories_EmptyStaysEmpty(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/categories/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"count": 0, "results": []any{}})
	})
	client := newPublicFixture(t, e)

	// An empty list is the caller's problem to present; the client never
	// substitutes placeholder data.
	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestListProducts_EncodesFilterQuery(t *testing.T) {
	var gotQuery map[string][]string
	e := echo.New()
	e.GET("/api/v1/products/", func(c echo.Context) error {
		gotQuery = c.QueryParams()

		return c.JSON(http.StatusOK, map[string]any{
			"count": 3,
			"results": []map[string]any{
				{"id": 1, "product_name": "Preform 28/22"},
				{"id": 2, "product_name": "Preform 38/30"},
				{"id": 3, "product_name": "Preform 48/40"},
			},
		})
	})
	client := newPublicFixture(t, e)

	products, err := client.ListProducts(context.Background(), entity.ProductFilter{
		Category:  2,
		Type:      5,
		Exclude:   9,
		Name:      "preform",
		WeightMin: 10,
		Sort:      "created_at",
		Order:     "desc",
	})
	require.NoError(t, err)
	assert.Len(t, products, 3)

	assert.Equal(t, []string{"2"}, gotQuery["category"])
	assert.Equal(t, []string{"5"}, gotQuery["type"])
	assert.Equal(t, []string{"9"}, gotQuery["exclude"])
	assert.Equal(t, []string{"preform"}, gotQuery["name"])
	assert.Equal(t, []string{"10"}, gotQuery["weight_min"])
	assert.Equal(t, []string{"created_at"}, gotQuery["sort"])
	assert.Equal(t, []string{"desc"}, gotQuery["order"])

	// Zero-valued filter fields stay out of the query entirely.
	assert.NotContains(t, gotQuery, "weight_max")
	assert.NotContains(t, gotQuery, "page")
}

func TestListProductsPage_BareArrayBecomesSinglePage(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/products/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []map[string]any{
			{"id": 1, "product_name": "Preform 28/22"},
		})
	})
	client := newPublicFixture(t, e)

	page, err := client.ListProductsPage(context.Background(), entity.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Results, 1)
}

func TestGetProduct_DecodesNestedShapes(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/products/3/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"id":           3,
			"product_name": "Preform 28/22",
			"in_stock":     true,
			"type": map[string]any{
				"id":        5,
				"type_name": "28mm neck",
				"category":  map[string]any{"id": 2, "category_name": "PET preforms"},
			},
			"category": map[string]any{"id": 2, "category_name": "PET preforms"},
			"colors":   []map[string]any{{"color": "#FFFFFF"}, {"color": "#FFFFFF"}},
			"images": []map[string]any{
				{"id": 11, "image": "images/front.png"},
				{"id": 12, "image": "images/side.png"},
			},
		})
	})
	client := newPublicFixture(t, e)

	product, err := client.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Preform 28/22", product.ProductName)
	require.NotNil(t, product.Type)
	assert.Equal(t, "28mm neck", product.Type.TypeName)
	require.NotNil(t, product.Type.Category)
	assert.Equal(t, int64(2), product.Type.Category.ID)
	assert.Len(t, product.Colors, 2)
	// First image is the representative thumbnail.
	require.Len(t, product.Images, 2)
	assert.Equal(t, "images/front.png", product.Images[0].Image)
}

func TestRequestsCarryRequestID(t *testing.T) {
	var gotRequestID string
	e := echo.New()
	e.GET("/api/v1/categories/", func(c echo.Context) error {
		gotRequestID = c.Request().Header.Get("X-Request-ID")

		return c.JSON(http.StatusOK, []any{})
	})
	client := newPublicFixture(t, e)

	_, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
}

func TestServerError_PreservesStatusAndBody(t *testing.T) {
	e := echo.New()
	e.GET("/api/v1/products/9/", func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   "Invalid data",
			"details": map[string][]string{"product_name": {"required"}},
		})
	})
	client := newPublicFixture(t, e)

	_, err := client.GetProduct(context.Background(), 9)
	require.Error(t, err)

	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.True(t, apperrors.IsValidationFailure(err))
	assert.Equal(t, []string{"required"}, apiErr.FieldErrors()["product_name"])
	assert.Equal(t, "Invalid data", apiErr.Detail())
}
