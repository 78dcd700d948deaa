package drafts

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/core/id"
	"orderdesk/internal/domain/catalogs/product"
	"orderdesk/internal/domain/ledger"
	"orderdesk/pkg/logger"
)

var tracer = otel.Tracer("orderdesk/drafts")

// ServiceConfig wires a Service.
type ServiceConfig struct {
	Ledger *ledger.Ledger
	Store  Store
	Events EventPublisher

	// ShareNumbers always receive a share link next to the customer.
	ShareNumbers []string
}

// Service runs the order desk workflow: fill a draft, price it, invoice it, share it.
type Service struct {
	ledger       *ledger.Ledger
	store        Store
	events       EventPublisher
	shareNumbers []string
}

// NewService creates a new drafts service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Ledger == nil {
		return nil, errors.New("drafts: ledger is required")
	}
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	if cfg.Events == nil {
		cfg.Events = NopPublisher{}
	}

	numbers := make([]string, len(cfg.ShareNumbers))
	copy(numbers, cfg.ShareNumbers)

	return &Service{
		ledger:       cfg.Ledger,
		store:        cfg.Store,
		events:       cfg.Events,
		shareNumbers: numbers,
	}, nil
}

// ShareNumbers returns the configured default recipients.
func (s *Service) ShareNumbers() []string {
	out := make([]string, len(s.shareNumbers))
	copy(out, s.shareNumbers)
	return out
}

// Catalog returns the product list drafts are priced against.
func (s *Service) Catalog() *product.Catalog {
	return s.ledger.Catalog()
}

// Location is where delivery dates and plan weeks are interpreted.
func (s *Service) Location() *time.Location {
	return s.ledger.Location()
}

// Quote prices an order without touching any draft.
func (s *Service) Quote(ctx context.Context, productName string, quantity, discountPercent int) (ledger.PriceResult, error) {
	price, err := s.ledger.Price(productName, quantity, discountPercent)
	if err != nil {
		return ledger.PriceResult{}, err
	}
	logger.FromContext(ctx).Debugw("quote computed",
		"product", productName,
		"quantity", quantity,
		"final_price", price.FinalPrice.StringFixed(2),
	)
	return price, nil
}

// Create opens a draft with form defaults and applies the initial values.
func (s *Service) Create(ctx context.Context, initial Patch) (Draft, error) {
	now := s.ledger.Now()
	d := newDraft(s.ledger.Catalog().First().Name, s.ledger.DefaultDeliveryDate(now), now)
	d.Apply(initial, now)

	if err := s.store.Create(ctx, d); err != nil {
		return Draft{}, err
	}

	logger.FromContext(ctx).Debugw("draft opened", "draft_id", d.ID, "product", d.Product)
	return d, nil
}

// Get returns a draft by ID.
func (s *Service) Get(ctx context.Context, draftID id.ID) (Draft, error) {
	return s.store.Get(ctx, draftID)
}

// Update applies a patch. Any change drops the stored price.
func (s *Service) Update(ctx context.Context, draftID id.ID, p Patch) (Draft, error) {
	now := s.ledger.Now()
	return s.store.Update(ctx, draftID, func(d *Draft) error {
		d.Apply(p, now)
		return nil
	})
}

// Delete discards a draft.
func (s *Service) Delete(ctx context.Context, draftID id.ID) error {
	return s.store.Delete(ctx, draftID)
}

// Price computes a fresh price snapshot for the draft's current inputs.
func (s *Service) Price(ctx context.Context, draftID id.ID) (Draft, error) {
	ctx, span := tracer.Start(ctx, "drafts.Price",
		trace.WithAttributes(attribute.String("draft.id", draftID.String())))
	defer span.End()

	d, err := s.store.Update(ctx, draftID, func(d *Draft) error {
		price, err := s.ledger.Price(d.Product, d.Quantity, d.DiscountPercent)
		if err != nil {
			return err
		}
		d.Price = price
		// A recalculation means the previous invoice no longer reflects the form.
		d.InvoiceGenerated = false
		d.UpdatedAt = s.ledger.Now()
		return nil
	})
	if err != nil {
		recordError(span, err)
		return Draft{}, err
	}

	span.SetAttributes(
		attribute.String("order.product", d.Product),
		attribute.Int("order.quantity", d.Quantity),
		attribute.Int("order.discount_percent", d.DiscountPercent),
	)
	logger.FromContext(ctx).Infow("draft priced",
		"draft_id", d.ID,
		"product", d.Product,
		"quantity", d.Quantity,
		"discount_percent", d.DiscountPercent,
		"final_price", d.Price.FinalPrice.StringFixed(2),
	)
	return d, nil
}

// InvoiceResult is what the clerk sees after generating an invoice.
type InvoiceResult struct {
	Draft          Draft
	Invoice        ledger.Invoice
	EncodedMessage string
	Links          []ledger.ShareLink
}

// Invoice generates the invoice for a priced draft and records the order.
func (s *Service) Invoice(ctx context.Context, draftID id.ID) (InvoiceResult, error) {
	ctx, span := tracer.Start(ctx, "drafts.Invoice",
		trace.WithAttributes(attribute.String("draft.id", draftID.String())))
	defer span.End()

	var inv ledger.Invoice
	d, err := s.store.Update(ctx, draftID, func(d *Draft) error {
		var err error
		inv, err = s.ledger.CreateInvoice(ctx, d.invoiceRequest())
		if err != nil {
			return err
		}
		d.InvoiceGenerated = true
		d.UpdatedAt = inv.Order.CreatedAt
		return nil
	})
	if err != nil {
		recordError(span, err)
		return InvoiceResult{}, err
	}

	span.SetAttributes(
		attribute.String("order.number", inv.Order.Number),
		attribute.String("order.priority", string(inv.Order.Priority)),
	)

	if err := s.events.PublishOrderCreated(ctx, newOrderCreated(inv.Order, d.Quantity)); err != nil {
		// The ledger append already happened; the event stream catches up out of band.
		logger.FromContext(ctx).Warnw("publish order event failed",
			"order_id", inv.Order.ID,
			"error", err,
		)
	}

	encoded := ledger.BuildShareMessage(inv.Text, nil)
	return InvoiceResult{
		Draft:          d,
		Invoice:        inv,
		EncodedMessage: encoded,
		Links:          ledger.BuildShareLinks(encoded, d.CustomerPhone, s.shareNumbers),
	}, nil
}

// ShareRequest asks for share links for an invoice.
type ShareRequest struct {
	// InvoiceText defaults to the ledger's last invoice when empty.
	InvoiceText   string
	CustomMessage *string
	CustomerPhone string
}

// ShareResult holds the encoded message and one link per recipient.
type ShareResult struct {
	EncodedMessage string
	Links          []ledger.ShareLink
}

// Share builds WhatsApp links for the customer and the default recipients.
func (s *Service) Share(ctx context.Context, req ShareRequest) (ShareResult, error) {
	if req.CustomerPhone == "" {
		return ShareResult{}, apperror.NewMissingCustomerDetails("customerPhone")
	}

	text := req.InvoiceText
	if text == "" && req.CustomMessage == nil {
		last, ok := s.ledger.LastInvoice()
		if !ok {
			return ShareResult{}, apperror.NewNotFound("invoice", "last")
		}
		text = last
	}

	encoded := ledger.BuildShareMessage(text, req.CustomMessage)
	return ShareResult{
		EncodedMessage: encoded,
		Links:          ledger.BuildShareLinks(encoded, req.CustomerPhone, s.shareNumbers),
	}, nil
}

// Plan is the production plan for one ISO week.
type Plan struct {
	Year        int
	Week        int
	Orders      []ledger.OrderRecord
	TotalOrders int
}

// WeeklyPlan returns this week's orders according to the ledger clock.
func (s *Service) WeeklyPlan(ctx context.Context) Plan {
	now := s.ledger.Now()
	year, week := now.ISOWeek()
	snap := s.ledger.WeeklySnapshot(now)
	return Plan{
		Year:        year,
		Week:        week,
		Orders:      snap.Orders,
		TotalOrders: snap.TotalOrders,
	}
}

// LastInvoice returns the most recently generated invoice text.
func (s *Service) LastInvoice(ctx context.Context) (string, error) {
	text, ok := s.ledger.LastInvoice()
	if !ok {
		return "", apperror.NewNotFound("invoice", "last")
	}
	return text, nil
}

// DefaultDeliveryDate is what a form opened right now would show.
func (s *Service) DefaultDeliveryDate() time.Time {
	return s.ledger.DefaultDeliveryDate(s.ledger.Now())
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
