package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/phone-resale/pkg/listing"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates for echo.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. It panics if they do not parse,
// which can only happen when the binary was built from broken templates.
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"money": func(v float64) string {
			return listing.FormatPrice(decimal.NewFromFloat(v))
		},
		"price": listing.FormatPrice,
	}
	return &Renderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
