package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProduct(t *testing.T) {
	valid := Product{
		SKU:          "SKU-1",
		ProductName:  "Widget",
		Category:     "Hardware",
		Price:        4.5,
		SellingPrice: 7.0,
		Supplier:     "Acme",
	}

	tests := []struct {
		name       string
		wantField  string
		wantMsg    string
		existing   []Product
		mutate     func(*Product)
		wantFields int
	}{
		{
			name:   "valid product",
			mutate: func(*Product) {},
		},
		{
			name:       "missing name",
			mutate:     func(p *Product) { p.ProductName = "" },
			wantField:  "product_name",
			wantMsg:    "Product name is required",
			wantFields: 1,
		},
		{
			name:       "missing sku",
			mutate:     func(p *Product) { p.SKU = "" },
			wantField:  "sku",
			wantMsg:    "SKU is required",
			wantFields: 1,
		},
		{
			name:       "zero price",
			mutate:     func(p *Product) { p.Price = 0 },
			wantField:  "price",
			wantMsg:    "Price is required",
			wantFields: 1,
		},
		{
			name:       "duplicate sku in scope",
			mutate:     func(*Product) {},
			existing:   []Product{{ID: 9, SKU: "SKU-1"}},
			wantField:  "sku",
			wantMsg:    "SKU already exists!",
			wantFields: 1,
		},
		{
			name:     "own row is not a duplicate",
			mutate:   func(p *Product) { p.ID = 9 },
			existing: []Product{{ID: 9, SKU: "SKU-1"}},
		},
		{
			name: "multiple failures reported together",
			mutate: func(p *Product) {
				p.Category = ""
				p.Supplier = ""
				p.SellingPrice = 0
			},
			wantFields: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			errs := ValidateProduct(p, tt.existing)
			assert.Len(t, errs, tt.wantFields)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantMsg, errs[tt.wantField])
			}
		})
	}
}

func TestProduct_IsNew(t *testing.T) {
	assert.True(t, Product{}.IsNew())
	assert.False(t, Product{ID: 3}.IsNew())
}

func TestBusiness_DisplayName(t *testing.T) {
	assert.Equal(t, "Corner Shop", Business{ID: 1, BusinessName: "Corner Shop"}.DisplayName())
	assert.Equal(t, "Business 4", Business{ID: 4}.DisplayName())
}

func TestBusiness_Selection(t *testing.T) {
	assert.Equal(t, "17", Business{ID: 17}.Selection())
}
