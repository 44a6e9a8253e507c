package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/phone-resale/internal/engine"
	"github.com/donaldgifford/phone-resale/internal/importer"
)

// uploadField is the multipart form field carrying the CSV file.
const uploadField = "file"

// Importer stores every phone in a CSV upload or none of them.
type Importer interface {
	Import(ctx context.Context, r io.Reader) (int, error)
}

// ImportHandler accepts bulk CSV uploads.
type ImportHandler struct {
	importer Importer
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(i Importer) *ImportHandler {
	return &ImportHandler{importer: i}
}

// ImportResponse reports how many phones were added.
type ImportResponse struct {
	Imported int `json:"imported" example:"12"`
}

// Import reads a CSV from a multipart "file" field or from the raw body.
func (h *ImportHandler) Import(c echo.Context) error {
	body, err := OpenUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	defer body.Close()

	n, err := h.importer.Import(c.Request().Context(), body)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, ImportResponse{Imported: n})
	case errors.Is(err, importer.ErrInvalidCSV):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, engine.ErrImportTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "import failed: " + err.Error()})
	}
}

// OpenUpload returns the uploaded CSV: the multipart file when the request is
// a form, otherwise the request body.
func OpenUpload(c echo.Context) (io.ReadCloser, error) {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ct, echo.MIMEMultipartForm) {
		return c.Request().Body, nil
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		return nil, errors.New(`multipart upload requires a "file" field`)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.New("opening uploaded file: " + err.Error())
	}
	return f, nil
}

// RegisterImportRoutes mounts the CSV import endpoint on e.
func RegisterImportRoutes(e *echo.Echo, h *ImportHandler) {
	e.POST("/api/v1/phones/import", h.Import)
}
