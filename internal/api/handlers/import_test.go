package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-resale/internal/api/handlers"
	"github.com/donaldgifford/phone-resale/internal/engine"
)

const validCSV = `model,brand,base_price,stock,condition,specs
iPhone 12,Apple,499.99,3,New,128GB
Galaxy S10,Samsung,120,0,good,
`

func multipartBody(t *testing.T, field, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, "phones.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        func(t *testing.T) (*bytes.Buffer, string)
		maxBytes    int64
		wantStatus  int
		wantBody    string
		wantInStore int
	}{
		{
			name: "raw csv body",
			body: func(_ *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(validCSV), "text/csv"
			},
			wantStatus:  http.StatusOK,
			wantBody:    `{"imported":2}`,
			wantInStore: 2,
		},
		{
			name: "multipart file field",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, "file", validCSV)
			},
			wantStatus:  http.StatusOK,
			wantBody:    `{"imported":2}`,
			wantInStore: 2,
		},
		{
			name: "multipart without file field",
			body: func(t *testing.T) (*bytes.Buffer, string) {
				return multipartBody(t, "upload", validCSV)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `requires a \"file\" field`,
		},
		{
			name: "bad row rejects the whole file",
			body: func(_ *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(validCSV + "Moto G,Motorola,-1,1,New,\n"), "text/csv"
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "line 4",
		},
		{
			name: "oversized upload",
			body: func(_ *testing.T) (*bytes.Buffer, string) {
				return bytes.NewBufferString(validCSV), "text/csv"
			},
			maxBytes:   16,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   "size limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := seededStore(t)
			eng := engine.NewEngine(s, engine.WithLogger(quietLogger()), engine.WithMaxImportBytes(tt.maxBytes))

			e := echo.New()
			handlers.RegisterImportRoutes(e, handlers.NewImportHandler(eng))

			body, contentType := tt.body(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/phones/import", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)

			_, total, err := s.ListPhones(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInStore, total)
		})
	}
}
