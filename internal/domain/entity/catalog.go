// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Category is the top level of the catalog hierarchy. A category groups
// product types, e.g. "PET preforms" or "Caps and closures".
type Category struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// ProductType belongs to exactly one Category and groups products,
// e.g. "28mm PCO neck preforms" under "PET preforms".
type ProductType struct {
	ID        int64     `json:"id"`
	TypeName  string    `json:"type_name"`
	Category  *Category `json:"category,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty"`
}

// ProductColor is a CSS color value associated with a product.
// Colors are unordered and duplicates are permitted.
type ProductColor struct {
	Color string `json:"color"`
}

// ProductImage is a stored image path for a product. Images are ordered by
// upload sequence; the first one is the representative thumbnail.
type ProductImage struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}

// Product is a single catalog item. It belongs to exactly one ProductType
// and, transitively, one Category. All numeric attributes are optional on
// the server side, so zero means "not specified".
type Product struct {
	ID             int64          `json:"id"`
	ProductName    string         `json:"product_name"`
	Description    string         `json:"description,omitempty"`
	ArticleNumber  string         `json:"article_number,omitempty"`
	Weight         int            `json:"weight,omitempty"`
	PackageVolume  int            `json:"package_volume,omitempty"`
	ThroatDiameter int            `json:"throat_diameter,omitempty"`
	ThroatStandard string         `json:"throat_standard,omitempty"`
	Dimensions     string         `json:"dimensions,omitempty"`
	Compound       string         `json:"compound,omitempty"`
	Material       string         `json:"material,omitempty"`
	Package        string         `json:"package,omitempty"`
	Application    string         `json:"application,omitempty"`
	InStock        bool           `json:"in_stock"`
	Type           *ProductType   `json:"type,omitempty"`
	Category       *Category      `json:"category,omitempty"`
	Colors         []ProductColor `json:"colors,omitempty"`
	Images         []ProductImage `json:"images,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
	UpdatedAt      string         `json:"updated_at,omitempty"`
}

// ProductPage carries one page of products together with the pagination
// metadata the server attaches to enveloped list responses.
type ProductPage struct {
	Count       int       `json:"count"`
	TotalPages  int       `json:"total_pages"`
	CurrentPage int       `json:"current_page"`
	Next        bool      `json:"next"`
	Previous    bool      `json:"previous"`
	Results     []Product `json:"results"`
}
