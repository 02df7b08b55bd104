package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"plastpack/internal/domain/entity"
	apperrors "plastpack/internal/domain/errors"
	"plastpack/internal/errors"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a token at POST /token/ and persists the
// token under every storage key. The issued token is also returned so the
// caller can inspect its shape.
func (a *AdminClient) Login(ctx context.Context, username, password string) (string, error) {
	payload := loginRequest{Username: username, Password: password}
	if err := a.validate.Struct(payload); err != nil {
		return "", errors.Wrap(err, "validate login input")
	}

	raw, err := a.postJSON(ctx, "/token/", payload)
	if err != nil {
		return "", err
	}

	token, ok := extractToken(raw)
	if !ok {
		return "", errors.WithStack(apperrors.ErrNoTokenInResponse)
	}

	if err := a.store.WriteToken(token); err != nil {
		return "", errors.Wrap(err, "persist token")
	}

	return token, nil
}

// CreateCategory adds a new category.
func (a *AdminClient) CreateCategory(ctx context.Context, input entity.CategoryInput) (*entity.Category, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate category input")
	}

	raw, err := a.postJSON(ctx, "/categories/", input)
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.Category](raw)
}

// UpdateCategory renames an existing category.
func (a *AdminClient) UpdateCategory(ctx context.Context, id int64, input entity.CategoryInput) (*entity.Category, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate category input")
	}

	raw, err := a.putJSON(ctx, fmt.Sprintf("/categories/%d/", id), input)
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.Category](raw)
}

// DeleteCategory removes a category and, server-side, everything under it.
func (a *AdminClient) DeleteCategory(ctx context.Context, id int64) error {
	_, err := a.send(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d/", id), nil, contentTypeJSON, nil)

	return err
}

// CreateType adds a product type under a category.
func (a *AdminClient) CreateType(ctx context.Context, input entity.TypeInput) (*entity.ProductType, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate type input")
	}

	raw, err := a.postJSON(ctx, "/types/", input)
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.ProductType](raw)
}

// UpdateType renames a product type or moves it to another category.
func (a *AdminClient) UpdateType(ctx context.Context, id int64, input entity.TypeInput) (*entity.ProductType, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate type input")
	}

	raw, err := a.putJSON(ctx, fmt.Sprintf("/types/%d/", id), input)
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.ProductType](raw)
}

// DeleteType removes a product type.
func (a *AdminClient) DeleteType(ctx context.Context, id int64) error {
	_, err := a.send(ctx, http.MethodDelete, fmt.Sprintf("/types/%d/", id), nil, contentTypeJSON, nil)

	return err
}

// CreateProduct submits a new product as multipart form data so an optional
// image can ride along with the create request.
func (a *AdminClient) CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate product input")
	}

	body, contentType, err := buildProductForm(input)
	if err != nil {
		return nil, err
	}

	raw, err := a.send(ctx, http.MethodPost, "/products/", nil, contentType, body)
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.Product](raw)
}

// UpdateProduct replaces a product's fields, again as multipart form data.
func (a *AdminClient) UpdateProduct(ctx context.Context, id int64, input entity.ProductInput) (*entity.Product, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, errors.Wrap(err, "validate product input")
	}

	body, contentType, err := buildProductForm(input)
	if err != nil {
		return nil, err
	}

	raw, err := a.send(ctx, http.MethodPut, fmt.Sprintf("/products/%d/", id), nil, contentType, body)
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.Product](raw)
}

// PatchProduct applies a partial JSON update; nil fields stay untouched.
func (a *AdminClient) PatchProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, errors.Wrap(err, "encode product patch")
	}

	raw, err := a.send(ctx, http.MethodPatch, fmt.Sprintf("/products/%d/", id), nil, contentTypeJSON, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.Product](raw)
}

// DeleteProduct removes a product and its images.
func (a *AdminClient) DeleteProduct(ctx context.Context, id int64) error {
	_, err := a.send(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/", id), nil, contentTypeJSON, nil)

	return err
}

// UploadProductImage attaches one more image to a product. The service
// expects the file under the multipart field "image".
func (a *AdminClient) UploadProductImage(ctx context.Context, productID int64, image entity.ImageFile) (*entity.ProductImage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", image.Name)
	if err != nil {
		return nil, errors.Wrap(err, "create image form file")
	}
	if _, err := io.Copy(part, image.Reader); err != nil {
		return nil, errors.Wrap(err, "copy image data")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "finish image form")
	}

	raw, err := a.send(ctx, http.MethodPost, fmt.Sprintf("/products/%d/images/", productID), nil, writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	return decodeInto[entity.ProductImage](raw)
}

// DeleteProductImage removes one stored image by its own id.
func (a *AdminClient) DeleteProductImage(ctx context.Context, imageID int64) error {
	_, err := a.send(ctx, http.MethodDelete, fmt.Sprintf("/product-images/%d/", imageID), nil, contentTypeJSON, nil)

	return err
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s payload", path)
	}

	return c.send(ctx, http.MethodPost, path, nil, contentTypeJSON, bytes.NewReader(body))
}

func (c *Client) putJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s payload", path)
	}

	return c.send(ctx, http.MethodPut, path, nil, contentTypeJSON, bytes.NewReader(body))
}

func decodeInto[T any](raw []byte) (*T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	return &value, nil
}

// buildProductForm lays a ProductInput out as multipart form fields the DRF
// serializer understands. Optional numeric fields are skipped when zero;
// colors travel as one JSON-encoded field, matching how the admin UI always
// submitted them.
func buildProductForm(input entity.ProductInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"product_name":    input.ProductName,
		"type_id":         strconv.FormatInt(input.TypeID, 10),
		"description":     input.Description,
		"article_number":  input.ArticleNumber,
		"throat_standard": input.ThroatStandard,
		"dimensions":      input.Dimensions,
		"compound":        input.Compound,
		"material":        input.Material,
		"package":         input.Package,
		"application":     input.Application,
		"in_stock":        strconv.FormatBool(input.InStock),
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", name)
		}
	}

	numeric := map[string]int{
		"weight":          input.Weight,
		"package_volume":  input.PackageVolume,
		"throat_diameter": input.ThroatDiameter,
	}
	for name, value := range numeric {
		if value <= 0 {
			continue
		}
		if err := writer.WriteField(name, strconv.Itoa(value)); err != nil {
			return nil, "", errors.Wrapf(err, "write field %s", name)
		}
	}

	if len(input.Colors) > 0 {
		colors := make([]entity.ProductColor, 0, len(input.Colors))
		for _, color := range input.Colors {
			colors = append(colors, entity.ProductColor{Color: color})
		}
		encoded, err := json.Marshal(colors)
		if err != nil {
			return nil, "", errors.Wrap(err, "encode colors")
		}
		if err := writer.WriteField("colors", string(encoded)); err != nil {
			return nil, "", errors.Wrap(err, "write field colors")
		}
	}

	if input.Image != nil {
		part, err := writer.CreateFormFile("image", input.Image.Name)
		if err != nil {
			return nil, "", errors.Wrap(err, "create image form file")
		}
		if _, err := io.Copy(part, input.Image.Reader); err != nil {
			return nil, "", errors.Wrap(err, "copy image data")
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "finish product form")
	}

	return &buf, writer.FormDataContentType(), nil
}
