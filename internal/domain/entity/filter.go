package entity

// ProductFilter mirrors the query parameters the catalog service accepts on
// the product list endpoint. Zero values are omitted from the encoded query.
type ProductFilter struct {
	Category int64 `schema:"category,omitempty"`
	Type     int64 `schema:"type,omitempty"`
	// Exclude drops one product id from the result, used to build
	// "related products" lists.
	Exclude int64 `schema:"exclude,omitempty"`

	Name           string `schema:"name,omitempty"`
	ThroatStandard string `schema:"throat_standard,omitempty"`

	ThroatDiameter    int `schema:"throat_diameter,omitempty"`
	ThroatDiameterMin int `schema:"throat_diameter_min,omitempty"`
	ThroatDiameterMax int `schema:"throat_diameter_max,omitempty"`

	Volume    int `schema:"volume,omitempty"`
	VolumeMin int `schema:"volume_min,omitempty"`
	VolumeMax int `schema:"volume_max,omitempty"`

	Weight    int `schema:"weight,omitempty"`
	WeightMin int `schema:"weight_min,omitempty"`
	WeightMax int `schema:"weight_max,omitempty"`

	Dimensions  string `schema:"dimensions,omitempty"`
	Compound    string `schema:"compound,omitempty"`
	Color       string `schema:"color,omitempty"`
	Material    string `schema:"material,omitempty"`
	Package     string `schema:"package,omitempty"`
	Application string `schema:"application,omitempty"`
	Description string `schema:"description,omitempty"`

	CreatedAtMin string `schema:"created_at_min,omitempty"`
	CreatedAtMax string `schema:"created_at_max,omitempty"`
	UpdatedAtMin string `schema:"updated_at_min,omitempty"`
	UpdatedAtMax string `schema:"updated_at_max,omitempty"`

	// Sort accepts product_name, package_volume, created_at, updated_at,
	// throat_diameter or weight; Order is asc or desc.
	Sort  string `schema:"sort,omitempty"`
	Order string `schema:"order,omitempty"`

	Page     int `schema:"page,omitempty"`
	PageSize int `schema:"page_size,omitempty"`
}
