package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// ListingResult is one platform's listing decision.
type ListingResult struct {
	Platform string `json:"platform"`
	Listed   bool   `json:"listed"`
	Price    string `json:"price,omitempty"`
	Label    string `json:"label,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message"`
}

// QuoteResponse holds a phone and its decision on every platform.
type QuoteResponse struct {
	Phone  domain.Phone    `json:"phone"`
	Quotes []ListingResult `json:"quotes"`
}

// ListPhone attempts to list a phone on a platform. A rejected listing is
// not an error; check Listed.
func (c *Client) ListPhone(ctx context.Context, id int64, platform string) (*ListingResult, error) {
	var r ListingResult
	path := fmt.Sprintf("/api/v1/phones/%d/listings/%s", id, url.PathEscape(platform))
	if err := c.postJSON(ctx, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Quote returns a phone's decision on every platform.
func (c *Client) Quote(ctx context.Context, id int64) (*QuoteResponse, error) {
	var r QuoteResponse
	if err := c.get(ctx, fmt.Sprintf("/api/v1/phones/%d/quotes", id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Import uploads a CSV file and returns the number of phones added.
func (c *Client) Import(ctx context.Context, csv io.Reader) (int, error) {
	var resp struct {
		Imported int `json:"imported"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/phones/import", csv, "text/csv", &resp); err != nil {
		return 0, err
	}
	return resp.Imported, nil
}
