package dto

import (
	"time"

	"orderdesk/internal/core/types"
	"orderdesk/internal/domain/catalogs/product"
)

// ProductResponse is one catalog entry.
type ProductResponse struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Display   string `json:"display"`
}

// CatalogResponse lists products in configured order, with the defaults an
// empty order form starts from.
type CatalogResponse struct {
	Products            []ProductResponse `json:"products"`
	ProductNames        []string          `json:"productNames"`
	DefaultProduct      string            `json:"defaultProduct"`
	DefaultDeliveryDate string            `json:"defaultDeliveryDate"`
}

// FromCatalog converts the catalog to its response.
func FromCatalog(c *product.Catalog, defaultDelivery time.Time) CatalogResponse {
	products := c.Products()
	resp := CatalogResponse{
		Products:            make([]ProductResponse, 0, len(products)),
		ProductNames:        c.Names(),
		DefaultProduct:      c.First().Name,
		DefaultDeliveryDate: FormatDate(defaultDelivery),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, ProductResponse{
			Name:      p.Name,
			UnitPrice: types.FormatMoney(p.UnitPrice),
			Display:   types.FormatRupees(p.UnitPrice),
		})
	}
	return resp
}
