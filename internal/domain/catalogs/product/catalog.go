package product

import (
	"context"

	"orderdesk/internal/core/apperror"
)

// Catalog is an immutable product table. It is safe for concurrent reads.
type Catalog struct {
	byName map[string]Product
	order  []string
}

// NewCatalog validates entries and builds a catalog that keeps their order for listing.
func NewCatalog(ctx context.Context, products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, apperror.NewValidation("catalog must contain at least one product")
	}

	c := &Catalog{
		byName: make(map[string]Product, len(products)),
		order:  make([]string, 0, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(ctx); err != nil {
			return nil, err
		}
		if _, exists := c.byName[p.Name]; exists {
			return nil, apperror.NewValidation("duplicate product name").
				WithDetail("product", p.Name)
		}
		c.byName[p.Name] = p
		c.order = append(c.order, p.Name)
	}

	return c, nil
}

// Lookup returns the product with the given name.
func (c *Catalog) Lookup(name string) (Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Names returns product names in configured order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Products returns all entries in configured order.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// First returns the first configured product, the form default.
func (c *Catalog) First() Product {
	return c.byName[c.order[0]]
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.order)
}
