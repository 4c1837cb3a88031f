package model

// Product is an inventory item within a business. CurrentStock reflects the
// Gateway's view as of the last fetch; orders and returns adjust it on the
// Gateway side, never locally.
type Product struct {
	ID           int64   `json:"id,omitempty"`
	SKU          string  `json:"sku"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	CurrentStock int     `json:"current_stock"`
	MinStock     int     `json:"min_stock"`
	MaxStock     int     `json:"max_stock"`
	Price        float64 `json:"price"`
	SellingPrice float64 `json:"selling_price"`
	Supplier     string  `json:"supplier"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// IsNew reports whether the product has been persisted yet. The Gateway
// assigns IDs, so a zero ID means create rather than update.
func (p Product) IsNew() bool {
	return p.ID == 0
}

// ValidateProduct checks the fields a product form requires before any
// request is made. existing is consulted for a duplicate SKU within the
// same business. Returned map is field name to message, empty when valid.
func ValidateProduct(p Product, existing []Product) map[string]string {
	errs := make(map[string]string)
	if p.ProductName == "" {
		errs["product_name"] = "Product name is required"
	}
	if p.SKU == "" {
		errs["sku"] = "SKU is required"
	}
	if p.Category == "" {
		errs["category"] = "Category is required"
	}
	if p.Price == 0 {
		errs["price"] = "Price is required"
	}
	if p.SellingPrice == 0 {
		errs["selling_price"] = "Selling price is required"
	}
	if p.Supplier == "" {
		errs["supplier"] = "Supplier is required"
	}
	for _, other := range existing {
		if other.SKU == p.SKU && other.ID != p.ID {
			errs["sku"] = "SKU already exists!"
			break
		}
	}
	return errs
}
