package ledger

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultShareGreeting opens the message when the clerk does not write one.
const DefaultShareGreeting = "Hello, here are your invoice details:\n\n"

const waBaseURL = "https://wa.me/"

// ShareLink is a pre-filled WhatsApp link for one recipient.
type ShareLink struct {
	Label string `json:"label"`
	Phone string `json:"phone"`
	URL   string `json:"url"`
}

// BuildShareMessage returns the percent-encoded message body for a wa.me link.
// A nil customMessage selects the default greeting followed by the invoice.
func BuildShareMessage(invoiceText string, customMessage *string) string {
	body := DefaultShareGreeting + invoiceText
	if customMessage != nil {
		body = *customMessage
	}
	return EncodeMessage(body)
}

// EncodeMessage escapes everything outside the unreserved set; spaces become %20.
// QueryEscape already turns a literal '+' into %2B, so every '+' left is a space.
func EncodeMessage(body string) string {
	return strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
}

// BuildShareLinks returns the customer link followed by one link per default number.
// Phones are passed through untouched and duplicates are kept.
func BuildShareLinks(encodedMessage, customerPhone string, defaultNumbers []string) []ShareLink {
	links := make([]ShareLink, 0, len(defaultNumbers)+1)
	links = append(links, shareLink("Customer", customerPhone, encodedMessage))
	for i, number := range defaultNumbers {
		links = append(links, shareLink("Default "+strconv.Itoa(i+1), number, encodedMessage))
	}
	return links
}

func shareLink(label, phone, encodedMessage string) ShareLink {
	return ShareLink{
		Label: label,
		Phone: phone,
		URL:   waBaseURL + phone + "?text=" + encodedMessage,
	}
}
