package dto

import (
	"time"

	"orderdesk/internal/domain/drafts"
	"orderdesk/internal/domain/ledger"
)

// InvoiceGeneratedMessage confirms a new invoice.
const InvoiceGeneratedMessage = "Invoice generated and enhanced sharing options are ready!"

// OrderResponse is one production plan row.
type OrderResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Product      string          `json:"product"`
	DeliveryDate string          `json:"deliveryDate"`
	Priority     ledger.Priority `json:"priority"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// FromOrder converts an order record to its response.
func FromOrder(o ledger.OrderRecord) OrderResponse {
	return OrderResponse{
		ID:           o.ID.String(),
		Number:       o.Number,
		Product:      o.Product,
		DeliveryDate: FormatDate(o.DeliveryDateTime),
		Priority:     o.Priority,
		CreatedAt:    o.CreatedAt,
	}
}

// ShareLinkResponse is one wa.me link.
type ShareLinkResponse struct {
	Label string `json:"label"`
	Phone string `json:"phone"`
	URL   string `json:"url"`
}

// FromShareLinks converts links in order.
func FromShareLinks(links []ledger.ShareLink) []ShareLinkResponse {
	out := make([]ShareLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, ShareLinkResponse{Label: l.Label, Phone: l.Phone, URL: l.URL})
	}
	return out
}

// InvoiceResponse is returned after an invoice is generated from a draft.
type InvoiceResponse struct {
	Invoice        string              `json:"invoice"`
	Order          OrderResponse       `json:"order"`
	Draft          DraftResponse       `json:"draft"`
	EncodedMessage string              `json:"encodedMessage"`
	ShareLinks     []ShareLinkResponse `json:"shareLinks"`
	DefaultNumbers []string            `json:"defaultNumbers"`
	Message        string              `json:"message"`
}

// FromInvoiceResult converts the service result to its response.
func FromInvoiceResult(r drafts.InvoiceResult, defaultNumbers []string) InvoiceResponse {
	return InvoiceResponse{
		Invoice:        r.Invoice.Text,
		Order:          FromOrder(r.Invoice.Order),
		Draft:          FromDraft(r.Draft),
		EncodedMessage: r.EncodedMessage,
		ShareLinks:     FromShareLinks(r.Links),
		DefaultNumbers: defaultNumbers,
		Message:        InvoiceGeneratedMessage,
	}
}

// LastInvoiceResponse carries the text of the most recent invoice.
type LastInvoiceResponse struct {
	Invoice string `json:"invoice"`
}
