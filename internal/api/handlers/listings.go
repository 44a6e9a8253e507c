package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/phone-resale/internal/engine"
	"github.com/donaldgifford/phone-resale/internal/store"
	"github.com/donaldgifford/phone-resale/pkg/listing"
	"github.com/donaldgifford/phone-resale/pkg/pricing"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// Lister evaluates phones against resale platforms.
type Lister interface {
	ListPhone(ctx context.Context, id int64, platform domain.Platform) (listing.Outcome, error)
	Quote(ctx context.Context, id int64) (*domain.Phone, []listing.Outcome, error)
}

// ListingsHandler handles listing and quote endpoints.
type ListingsHandler struct {
	lister Lister
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(l Lister) *ListingsHandler {
	return &ListingsHandler{lister: l}
}

// ListingResult is the wire form of a listing outcome.
type ListingResult struct {
	Platform domain.Platform `json:"platform"         example:"X"`
	Listed   bool            `json:"listed"`
	Price    string          `json:"price,omitempty"  example:"110.00" doc:"Sale price with two decimals, set once computed"`
	Label    string          `json:"label,omitempty"  example:"New"    doc:"Platform condition label, set once mapped"`
	Reason   listing.Reason  `json:"reason,omitempty" enum:"out_of_stock,unsupported_condition,unprofitable"`
	Message  string          `json:"message"          example:"Phone listed on X at $110.00 [New]"`
}

// NewListingResult converts an outcome for the wire.
func NewListingResult(o listing.Outcome) ListingResult {
	r := ListingResult{
		Platform: o.Platform,
		Listed:   o.Listed,
		Label:    o.Label,
		Reason:   o.Reason,
		Message:  o.Message(),
	}
	if !o.Price.IsZero() {
		r.Price = o.Price.StringFixed(pricing.Places)
	}
	return r
}

// --- Input/Output types ---

// ListPhoneInput is the input for a listing attempt.
type ListPhoneInput struct {
	ID       int64  `path:"id"       doc:"Phone ID" minimum:"1"`
	Platform string `path:"platform" doc:"Target platform" enum:"X,Y,Z"`
}

// ListPhoneOutput is the response for a listing attempt.
type ListPhoneOutput struct {
	Body ListingResult
}

// QuoteOutput is the response for a quote across every platform.
type QuoteOutput struct {
	Body struct {
		Phone  domain.Phone    `json:"phone"`
		Quotes []ListingResult `json:"quotes"`
	}
}

// --- Handlers ---

// ListPhone attempts to list a phone on one platform. Business rejections
// are reported with listed=false and a reason, not as HTTP errors.
func (h *ListingsHandler) ListPhone(ctx context.Context, input *ListPhoneInput) (*ListPhoneOutput, error) {
	platform, err := domain.ParsePlatform(input.Platform)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	out, err := h.lister.ListPhone(ctx, input.ID, platform)
	if err != nil {
		return nil, listingError(err)
	}

	return &ListPhoneOutput{Body: NewListingResult(out)}, nil
}

// Quote evaluates a phone against every platform.
func (h *ListingsHandler) Quote(ctx context.Context, input *PhoneIDInput) (*QuoteOutput, error) {
	p, outcomes, err := h.lister.Quote(ctx, input.ID)
	if err != nil {
		return nil, listingError(err)
	}

	resp := &QuoteOutput{}
	resp.Body.Phone = *p
	resp.Body.Quotes = make([]ListingResult, 0, len(outcomes))
	for _, o := range outcomes {
		resp.Body.Quotes = append(resp.Body.Quotes, NewListingResult(o))
	}
	return resp, nil
}

func listingError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("phone not found")
	case errors.Is(err, engine.ErrUnknownPlatform):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("evaluating listing: " + err.Error())
	}
}

// RegisterListingRoutes registers listing and quote endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-phone",
		Method:      http.MethodPost,
		Path:        "/api/v1/phones/{id}/listings/{platform}",
		Summary:     "List a phone on a platform",
		Description: "Runs the stock, condition, price and profitability checks in order. " +
			"A rejected listing is a 200 response with listed=false.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.ListPhone)

	huma.Register(api, huma.Operation{
		OperationID: "quote-phone",
		Method:      http.MethodGet,
		Path:        "/api/v1/phones/{id}/quotes",
		Summary:     "Quote a phone on every platform",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.Quote)
}
