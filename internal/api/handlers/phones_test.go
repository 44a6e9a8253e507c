package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-resale/internal/api/handlers"
	"github.com/donaldgifford/phone-resale/internal/store"
	storeMocks "github.com/donaldgifford/phone-resale/internal/store/mocks"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededStore(t *testing.T, phones ...domain.Phone) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore(nil)
	for i := range phones {
		require.NoError(t, s.CreatePhone(context.Background(), &phones[i]))
	}
	return s
}

func TestPhonesHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "no filters returns phones",
			path: "/api/v1/phones",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPhones(mock.Anything, mock.MatchedBy(func(q *store.PhoneQuery) bool {
						return q.Search == "" && q.Condition == nil && q.Platform == nil
					})).
					Return([]domain.Phone{{ID: 1, Model: "iPhone 12", Brand: "Apple"}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name: "filters are passed through",
			path: "/api/v1/phones?q=pixel&condition=Good&platform=Z",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPhones(mock.Anything, mock.MatchedBy(func(q *store.PhoneQuery) bool {
						return q.Search == "pixel" &&
							q.Condition != nil && *q.Condition == domain.ConditionGood &&
							q.Platform != nil && *q.Platform == domain.PlatformZ
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"phones":[]`,
		},
		{
			name:       "unknown condition rejected",
			path:       "/api/v1/phones?condition=Mint",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown platform rejected",
			path:       "/api/v1/phones?platform=W",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/phones",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPhones(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("disk on fire")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing phones",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterPhoneRoutes(api, handlers.NewPhonesHandler(ms, quietLogger()))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestPhonesHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			path: "/api/v1/phones/7",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetPhone(mock.Anything, int64(7)).
					Return(&domain.Phone{ID: 7, Model: "Galaxy S21", Specs: domain.DefaultSpecs}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"model":"Galaxy S21"`,
		},
		{
			name: "not found",
			path: "/api/v1/phones/9",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetPhone(mock.Anything, int64(9)).
					Return(nil, fmt.Errorf("getting phone 9: %w", store.ErrNotFound)).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "phone not found",
		},
		{
			name:       "non-numeric id",
			path:       "/api/v1/phones/abc",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterPhoneRoutes(api, handlers.NewPhonesHandler(ms, quietLogger()))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestPhonesHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantBody   []string
	}{
		{
			name: "valid phone gets id and default specs",
			body: map[string]any{
				"model": "iPhone 12", "brand": "Apple",
				"base_price": 100, "stock": 2, "condition": "New",
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"id":1`, `"specs":"N/A"`},
		},
		{
			name: "zero stock is accepted",
			body: map[string]any{
				"model": "Pixel 6", "brand": "Google",
				"base_price": 80, "stock": 0, "condition": "Scrap", "specs": "128GB",
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"specs":"128GB"`, `"stock":0`},
		},
		{
			name: "zero price rejected",
			body: map[string]any{
				"model": "iPhone 12", "brand": "Apple",
				"base_price": 0, "stock": 1, "condition": "New",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "negative stock rejected",
			body: map[string]any{
				"model": "iPhone 12", "brand": "Apple",
				"base_price": 10, "stock": -1, "condition": "New",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown condition rejected",
			body: map[string]any{
				"model": "iPhone 12", "brand": "Apple",
				"base_price": 10, "stock": 1, "condition": "Mint",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "blank model rejected by store validation",
			body: map[string]any{
				"model": " ", "brand": "Apple",
				"base_price": 10, "stock": 1, "condition": "Good",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"model is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := seededStore(t)
			_, api := humatest.New(t)
			handlers.RegisterPhoneRoutes(api, handlers.NewPhonesHandler(s, quietLogger()))

			resp := api.Post("/api/v1/phones", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}

			_, total, err := s.ListPhones(context.Background(), nil)
			require.NoError(t, err)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, 1, total)
			} else {
				assert.Zero(t, total, "rejected phone must not be stored")
			}
		})
	}
}

func TestPhonesHandler_Delete(t *testing.T) {
	t.Parallel()

	s := seededStore(t, domain.Phone{
		Model: "iPhone 12", Brand: "Apple", BasePrice: 100, Stock: 1, Condition: domain.ConditionNew,
	})

	_, api := humatest.New(t)
	handlers.RegisterPhoneRoutes(api, handlers.NewPhonesHandler(s, quietLogger()))

	resp := api.Delete("/api/v1/phones/1")
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = api.Delete("/api/v1/phones/1")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Get("/api/v1/phones/1")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
