package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"plastpack/internal/domain/entity"
	"plastpack/internal/errors"
)

// ListCategories returns all catalog categories.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	raw, err := c.get(ctx, "/categories/", nil)
	if err != nil {
		return nil, err
	}

	return decodeList[entity.Category](raw)
}

// GetCategory returns a single category by id.
func (c *Client) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/categories/%d/", id), nil)
	if err != nil {
		return nil, err
	}

	var category entity.Category
	if err := json.Unmarshal(raw, &category); err != nil {
		return nil, errors.Wrap(err, "decode category")
	}

	return &category, nil
}

// ListTypes returns product types, optionally narrowed to one category.
// Pass categoryID 0 for all types.
func (c *Client) ListTypes(ctx context.Context, categoryID int64) ([]entity.ProductType, error) {
	var query url.Values
	if categoryID > 0 {
		query = url.Values{"category": []string{strconv.FormatInt(categoryID, 10)}}
	}

	raw, err := c.get(ctx, "/types/", query)
	if err != nil {
		return nil, err
	}

	return decodeList[entity.ProductType](raw)
}

// GetType returns a single product type by id.
func (c *Client) GetType(ctx context.Context, id int64) (*entity.ProductType, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/types/%d/", id), nil)
	if err != nil {
		return nil, err
	}

	var productType entity.ProductType
	if err := json.Unmarshal(raw, &productType); err != nil {
		return nil, errors.Wrap(err, "decode type")
	}

	return &productType, nil
}

// ListProducts returns the products matching the filter, unwrapped from the
// pagination envelope when the server uses one.
func (c *Client) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	query, err := c.filterQuery(filter)
	if err != nil {
		return nil, err
	}

	raw, err := c.get(ctx, "/products/", query)
	if err != nil {
		return nil, err
	}

	return decodeList[entity.Product](raw)
}

// ListProductsPage returns one page of products together with the server's
// pagination metadata. A deployment answering with a bare array yields a
// single synthetic page.
func (c *Client) ListProductsPage(ctx context.Context, filter entity.ProductFilter) (*entity.ProductPage, error) {
	query, err := c.filterQuery(filter)
	if err != nil {
		return nil, err
	}

	raw, err := c.get(ctx, "/products/", query)
	if err != nil {
		return nil, err
	}

	if isJSONArray(raw) {
		var items []entity.Product
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, errors.Wrap(err, "decode product list")
		}

		return &entity.ProductPage{
			Count:       len(items),
			TotalPages:  1,
			CurrentPage: 1,
			Results:     items,
		}, nil
	}

	var page entity.ProductPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, errors.Wrap(err, "decode product page")
	}

	return &page, nil
}

// GetProduct returns a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/products/%d/", id), nil)
	if err != nil {
		return nil, err
	}

	var product entity.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, errors.Wrap(err, "decode product")
	}

	return &product, nil
}

// SearchProducts looks products up by name substring, the one free-text
// search the service implements.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	return c.ListProducts(ctx, entity.ProductFilter{Name: query})
}

// RelatedProducts lists products sharing the given type, excluding the
// product they are related to.
func (c *Client) RelatedProducts(ctx context.Context, typeID, excludeID int64) ([]entity.Product, error) {
	return c.ListProducts(ctx, entity.ProductFilter{Type: typeID, Exclude: excludeID})
}
