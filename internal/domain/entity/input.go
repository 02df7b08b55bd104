package entity

import "io"

// CategoryInput is the write payload for creating or updating a category.
type CategoryInput struct {
	CategoryName string `json:"category_name" validate:"required"`
}

// TypeInput is the write payload for creating or updating a product type.
// The server expects the parent category by id under "category_id".
type TypeInput struct {
	TypeName   string `json:"type_name" validate:"required"`
	CategoryID int64  `json:"category_id" validate:"required"`
}

// ImageFile is an image payload streamed into a multipart request.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// ProductInput is the write payload for creating or fully updating a product.
// Products are submitted as multipart form data so an image can ride along
// with the first request.
type ProductInput struct {
	ProductName    string   `validate:"required"`
	TypeID         int64    `validate:"required"`
	Description    string   `validate:"-"`
	ArticleNumber  string   `validate:"-"`
	Weight         int      `validate:"min=0"`
	PackageVolume  int      `validate:"min=0"`
	ThroatDiameter int      `validate:"min=0"`
	ThroatStandard string   `validate:"-"`
	Dimensions     string   `validate:"-"`
	Compound       string   `validate:"-"`
	Material       string   `validate:"-"`
	Package        string   `validate:"-"`
	Application    string   `validate:"-"`
	InStock        bool     `validate:"-"`
	Colors         []string `validate:"omitempty,dive,hexcolor"`
	Image          *ImageFile
}

// ProductPatch is a partial JSON update; nil fields are left untouched.
type ProductPatch struct {
	ProductName    *string        `json:"product_name,omitempty"`
	TypeID         *int64         `json:"type_id,omitempty"`
	Description    *string        `json:"description,omitempty"`
	ArticleNumber  *string        `json:"article_number,omitempty"`
	Weight         *int           `json:"weight,omitempty"`
	PackageVolume  *int           `json:"package_volume,omitempty"`
	ThroatDiameter *int           `json:"throat_diameter,omitempty"`
	ThroatStandard *string        `json:"throat_standard,omitempty"`
	Dimensions     *string        `json:"dimensions,omitempty"`
	Compound       *string        `json:"compound,omitempty"`
	Material       *string        `json:"material,omitempty"`
	Package        *string        `json:"package,omitempty"`
	Application    *string        `json:"application,omitempty"`
	InStock        *bool          `json:"in_stock,omitempty"`
	Colors         []ProductColor `json:"colors,omitempty"`
}
