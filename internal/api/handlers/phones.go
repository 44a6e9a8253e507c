package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/phone-resale/internal/store"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// PhonesHandler handles inventory CRUD endpoints.
type PhonesHandler struct {
	store store.Store
	log   *slog.Logger
}

// NewPhonesHandler creates a new PhonesHandler.
func NewPhonesHandler(s store.Store, log *slog.Logger) *PhonesHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PhonesHandler{store: s, log: log}
}

// --- Input/Output types ---

// ListPhonesInput filters the inventory listing.
type ListPhonesInput struct {
	Query     string `query:"q"         doc:"Case-insensitive match on model or brand"`
	Condition string `query:"condition" doc:"Exact internal condition"                           enum:"New,Good,Scrap,"`
	Platform  string `query:"platform"  doc:"Only phones whose condition the platform can label" enum:"X,Y,Z,"`
	Limit     int    `query:"limit"     doc:"Page size (0 means the maximum of 500)"                               minimum:"0" maximum:"500"`
	Offset    int    `query:"offset"    doc:"Pagination offset"                                                     minimum:"0"`
}

// ListPhonesOutput is the response for listing phones.
type ListPhonesOutput struct {
	Body struct {
		Phones []domain.Phone `json:"phones"`
		Total  int            `json:"total"`
	}
}

// PhoneIDInput addresses a single phone.
type PhoneIDInput struct {
	ID int64 `path:"id" doc:"Phone ID" minimum:"1"`
}

// PhoneOutput wraps a single phone.
type PhoneOutput struct {
	Body domain.Phone
}

// CreatePhoneBody is the request body for adding a phone.
type CreatePhoneBody struct {
	Model     string  `json:"model"           doc:"Model name"                  minLength:"1"       example:"iPhone 12"`
	Brand     string  `json:"brand"           doc:"Manufacturer"                minLength:"1"       example:"Apple"`
	BasePrice float64 `json:"base_price"      doc:"Purchase price before markup" exclusiveMinimum:"0" example:"499.99"`
	Stock     int     `json:"stock"           doc:"Units on hand"               minimum:"0"         example:"3"`
	Condition string  `json:"condition"       doc:"Internal condition"          enum:"New,Good,Scrap"`
	Specs     string  `json:"specs,omitempty" doc:"Free text, defaults to N/A"  required:"false"`
}

// CreatePhoneInput is the input for adding a phone.
type CreatePhoneInput struct {
	Body CreatePhoneBody
}

// --- Handlers ---

// ListPhones returns the inventory filtered by search text, condition and
// platform support.
func (h *PhonesHandler) ListPhones(ctx context.Context, input *ListPhonesInput) (*ListPhonesOutput, error) {
	q := &store.PhoneQuery{
		Search: input.Query,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Condition != "" {
		c := domain.Condition(input.Condition)
		q.Condition = &c
	}
	if input.Platform != "" {
		p := domain.Platform(input.Platform)
		q.Platform = &p
	}

	phones, total, err := h.store.ListPhones(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing phones: " + err.Error())
	}
	if phones == nil {
		phones = []domain.Phone{}
	}

	resp := &ListPhonesOutput{}
	resp.Body.Phones = phones
	resp.Body.Total = total
	return resp, nil
}

// GetPhone returns a single phone.
func (h *PhonesHandler) GetPhone(ctx context.Context, input *PhoneIDInput) (*PhoneOutput, error) {
	p, err := h.store.GetPhone(ctx, input.ID)
	if err != nil {
		return nil, storeError("getting phone", err)
	}
	return &PhoneOutput{Body: *p}, nil
}

// CreatePhone adds a phone to the inventory.
func (h *PhonesHandler) CreatePhone(ctx context.Context, input *CreatePhoneInput) (*PhoneOutput, error) {
	p := &domain.Phone{
		Model:     input.Body.Model,
		Brand:     input.Body.Brand,
		BasePrice: input.Body.BasePrice,
		Stock:     input.Body.Stock,
		Condition: domain.Condition(input.Body.Condition),
		Specs:     input.Body.Specs,
	}

	if err := h.store.CreatePhone(ctx, p); err != nil {
		return nil, storeError("creating phone", err)
	}

	h.log.Info("phone added", "phone_id", p.ID, "model", p.Model, "condition", p.Condition)
	return &PhoneOutput{Body: *p}, nil
}

// DeletePhone removes a phone from the inventory.
func (h *PhonesHandler) DeletePhone(ctx context.Context, input *PhoneIDInput) (*struct{}, error) {
	if err := h.store.DeletePhone(ctx, input.ID); err != nil {
		return nil, storeError("deleting phone", err)
	}

	h.log.Info("phone deleted", "phone_id", input.ID)
	return nil, nil
}

// storeError maps store sentinels to HTTP errors.
func storeError(action string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("phone not found")
	case errors.Is(err, domain.ErrInvalidPhone):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(action + ": " + err.Error())
	}
}

// RegisterPhoneRoutes registers inventory endpoints with the Huma API.
func RegisterPhoneRoutes(api huma.API, h *PhonesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-phones",
		Method:      http.MethodGet,
		Path:        "/api/v1/phones",
		Summary:     "List phones",
		Description: "Returns the inventory in insertion order with optional search, condition and platform filters.",
		Tags:        []string{"phones"},
	}, h.ListPhones)

	huma.Register(api, huma.Operation{
		OperationID:   "create-phone",
		Method:        http.MethodPost,
		Path:          "/api/v1/phones",
		Summary:       "Add a phone",
		Tags:          []string{"phones"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.CreatePhone)

	huma.Register(api, huma.Operation{
		OperationID: "get-phone",
		Method:      http.MethodGet,
		Path:        "/api/v1/phones/{id}",
		Summary:     "Get a phone by ID",
		Tags:        []string{"phones"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetPhone)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-phone",
		Method:        http.MethodDelete,
		Path:          "/api/v1/phones/{id}",
		Summary:       "Delete a phone",
		Tags:          []string{"phones"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeletePhone)
}
