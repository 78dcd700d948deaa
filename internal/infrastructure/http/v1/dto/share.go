package dto

import "orderdesk/internal/domain/drafts"

// ShareRequest asks for share links. A missing invoice falls back to the last one;
// a present customMessage replaces the default greeting and invoice entirely.
type ShareRequest struct {
	InvoiceText   string  `json:"invoiceText"`
	CustomMessage *string `json:"customMessage"`
	CustomerPhone string  `json:"customerPhone"`
}

// ToServiceRequest converts the request for the drafts service.
func (r *ShareRequest) ToServiceRequest() drafts.ShareRequest {
	return drafts.ShareRequest{
		InvoiceText:   r.InvoiceText,
		CustomMessage: r.CustomMessage,
		CustomerPhone: r.CustomerPhone,
	}
}

// ShareResponse lists one link per recipient, customer first.
type ShareResponse struct {
	EncodedMessage string              `json:"encodedMessage"`
	Links          []ShareLinkResponse `json:"links"`
}

// FromShareResult converts the service result to its response.
func FromShareResult(r drafts.ShareResult) ShareResponse {
	return ShareResponse{
		EncodedMessage: r.EncodedMessage,
		Links:          FromShareLinks(r.Links),
	}
}
