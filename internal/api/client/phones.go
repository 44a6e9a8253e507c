package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// PhonesResponse wraps the inventory listing.
type PhonesResponse struct {
	Phones []domain.Phone `json:"phones"`
	Total  int            `json:"total"`
}

// ListPhonesParams defines query parameters for inventory queries.
type ListPhonesParams struct {
	Query     string
	Condition string
	Platform  string
	Limit     int
	Offset    int
}

// NewPhone is the body for adding a phone.
type NewPhone struct {
	Model     string  `json:"model"`
	Brand     string  `json:"brand"`
	BasePrice float64 `json:"base_price"`
	Stock     int     `json:"stock"`
	Condition string  `json:"condition"`
	Specs     string  `json:"specs,omitempty"`
}

// ListPhones returns phones matching params. A nil params lists everything.
func (c *Client) ListPhones(ctx context.Context, params *ListPhonesParams) (*PhonesResponse, error) {
	q := url.Values{}
	if params != nil {
		if params.Query != "" {
			q.Set("q", params.Query)
		}
		if params.Condition != "" {
			q.Set("condition", params.Condition)
		}
		if params.Platform != "" {
			q.Set("platform", params.Platform)
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}

	path := "/api/v1/phones"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp PhonesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPhone returns a single phone by ID.
func (c *Client) GetPhone(ctx context.Context, id int64) (*domain.Phone, error) {
	var p domain.Phone
	if err := c.get(ctx, fmt.Sprintf("/api/v1/phones/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePhone adds a phone and returns it with its assigned ID.
func (c *Client) CreatePhone(ctx context.Context, p *NewPhone) (*domain.Phone, error) {
	var created domain.Phone
	if err := c.postJSON(ctx, "/api/v1/phones", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeletePhone removes a phone by ID.
func (c *Client) DeletePhone(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/phones/%d", id))
}
