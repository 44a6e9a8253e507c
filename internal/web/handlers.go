// Package web serves the server-rendered inventory page and its form actions.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/phone-resale/internal/importer"
	"github.com/donaldgifford/phone-resale/internal/store"
	"github.com/donaldgifford/phone-resale/pkg/condition"
	"github.com/donaldgifford/phone-resale/pkg/listing"
	"github.com/donaldgifford/phone-resale/pkg/pricing"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// Flash texts shown after form actions.
const (
	msgAdded             = "Phone added successfully!"
	msgInvalidPriceStock = "Invalid price or stock!"
	msgDeleted           = "Phone deleted!"
	msgNotFound          = "Phone not found!"
	msgUploaded          = "Bulk upload successful!"
	msgInvalidUpload     = "Upload a valid CSV file!"
)

// Service is what the page needs beyond plain store reads.
type Service interface {
	ListPhone(ctx context.Context, id int64, platform domain.Platform) (listing.Outcome, error)
	Import(ctx context.Context, r io.Reader) (int, error)
}

// Handler serves the inventory page.
type Handler struct {
	store store.Store
	svc   Service
	log   *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(s store.Store, svc Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{store: s, svc: svc, log: log}
}

// RegisterRoutes installs the renderer and mounts the page routes on e.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.Renderer = NewRenderer()

	e.GET("/", h.Index)
	e.POST("/add", h.Add)
	e.POST("/delete/:id", h.Delete)
	e.POST("/bulk_upload", h.BulkUpload)
	e.POST("/list/:id/:platform", h.List)
}

// platformQuote is one platform column of an inventory row.
type platformQuote struct {
	Platform domain.Platform
	Price    decimal.Decimal
	Label    string
}

type phoneRow struct {
	domain.Phone
	Quotes []platformQuote
}

type indexPage struct {
	Query           string
	ConditionFilter string
	PlatformFilter  string
	Conditions      []domain.Condition
	Platforms       []domain.Platform
	Phones          []phoneRow
	Flash           *Flash
}

// Index renders the filtered inventory table. Unknown filter values are
// ignored rather than rejected.
func (h *Handler) Index(c echo.Context) error {
	page := indexPage{
		Query:      strings.TrimSpace(c.QueryParam("q")),
		Conditions: domain.Conditions(),
		Platforms:  domain.Platforms(),
	}

	q := &store.PhoneQuery{Search: page.Query}
	if cond, err := domain.ParseCondition(c.QueryParam("condition")); err == nil {
		q.Condition = &cond
		page.ConditionFilter = string(cond)
	}
	if p, err := domain.ParsePlatform(c.QueryParam("platform")); err == nil {
		q.Platform = &p
		page.PlatformFilter = string(p)
	}

	phones, _, err := h.store.ListPhones(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "listing phones").SetInternal(err)
	}

	page.Phones = make([]phoneRow, 0, len(phones))
	for _, p := range phones {
		page.Phones = append(page.Phones, newPhoneRow(p))
	}

	if f, ok := popFlash(c); ok {
		page.Flash = &f
	}

	return c.Render(http.StatusOK, "index.html", page)
}

func newPhoneRow(p domain.Phone) phoneRow {
	prices := pricing.Prices(p.BasePrice)
	row := phoneRow{Phone: p}
	for _, platform := range domain.Platforms() {
		row.Quotes = append(row.Quotes, platformQuote{
			Platform: platform,
			Price:    prices[platform],
			Label:    condition.Label(platform, p.Condition),
		})
	}
	return row
}

// Add creates a phone from the add form.
func (h *Handler) Add(c echo.Context) error {
	rawPrice := strings.TrimSpace(c.FormValue("base_price"))
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return h.redirect(c, FlashDanger, fmt.Sprintf("Error: base_price %q is not a number", rawPrice))
	}
	rawStock := strings.TrimSpace(c.FormValue("stock"))
	stock, err := strconv.Atoi(rawStock)
	if err != nil {
		return h.redirect(c, FlashDanger, fmt.Sprintf("Error: stock %q is not an integer", rawStock))
	}
	if price <= 0 || stock < 0 {
		return h.redirect(c, FlashDanger, msgInvalidPriceStock)
	}

	cond, err := domain.ParseCondition(c.FormValue("condition"))
	if err != nil {
		return h.redirect(c, FlashDanger, "Error: "+err.Error())
	}

	p := &domain.Phone{
		Model:     strings.TrimSpace(c.FormValue("model")),
		Brand:     strings.TrimSpace(c.FormValue("brand")),
		BasePrice: price,
		Stock:     stock,
		Condition: cond,
		Specs:     strings.TrimSpace(c.FormValue("specs")),
	}
	if err := h.store.CreatePhone(c.Request().Context(), p); err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) {
			return h.redirect(c, FlashDanger, "Error: "+err.Error())
		}
		return fmt.Errorf("adding phone: %w", err)
	}

	h.log.Info("phone added", "phone_id", p.ID, "model", p.Model)
	return h.redirect(c, FlashSuccess, msgAdded)
}

// Delete removes a phone.
func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.redirect(c, FlashDanger, msgNotFound)
	}

	if err := h.store.DeletePhone(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return h.redirect(c, FlashDanger, msgNotFound)
		}
		return fmt.Errorf("deleting phone: %w", err)
	}

	h.log.Info("phone deleted", "phone_id", id)
	return h.redirect(c, FlashInfo, msgDeleted)
}

// BulkUpload imports a .csv file from the upload form. A file with any bad
// row adds nothing.
func (h *Handler) BulkUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil || !strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
		return h.redirect(c, FlashDanger, msgInvalidUpload)
	}

	f, err := fh.Open()
	if err != nil {
		return h.redirect(c, FlashDanger, msgInvalidUpload)
	}
	defer f.Close()

	n, err := h.svc.Import(c.Request().Context(), f)
	if err != nil {
		if errors.Is(err, importer.ErrInvalidCSV) {
			return h.redirect(c, FlashDanger, msgInvalidUpload+" "+strings.TrimPrefix(err.Error(), "parsing upload: "))
		}
		return h.redirect(c, FlashDanger, "Error: "+err.Error())
	}

	h.log.Info("bulk upload", "phones", n, "file", fh.Filename)
	return h.redirect(c, FlashSuccess, msgUploaded)
}

// List attempts to list a phone on a platform and flashes the outcome.
func (h *Handler) List(c echo.Context) error {
	platform, err := domain.ParsePlatform(c.Param("platform"))
	if err != nil {
		return h.redirect(c, FlashDanger, fmt.Sprintf("Unknown platform %s!", c.Param("platform")))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.redirect(c, FlashDanger, msgNotFound)
	}

	out, err := h.svc.ListPhone(c.Request().Context(), id, platform)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return h.redirect(c, FlashDanger, msgNotFound)
		}
		return fmt.Errorf("listing phone: %w", err)
	}

	category := FlashDanger
	if out.Listed {
		category = FlashSuccess
	}
	return h.redirect(c, category, out.Message())
}

func (*Handler) redirect(c echo.Context, category, msg string) error {
	setFlash(c, Flash{Category: category, Message: msg})
	return c.Redirect(http.StatusSeeOther, "/")
}
