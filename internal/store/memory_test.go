package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-resale/internal/store"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

func newPhone(model, brand string, c domain.Condition) domain.Phone {
	return domain.Phone{Model: model, Brand: brand, BasePrice: 120, Stock: 2, Condition: c}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(nil)

	p := newPhone("iPhone 12", "Apple", domain.ConditionNew)
	require.NoError(t, s.CreatePhone(ctx, &p))
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, domain.DefaultSpecs, p.Specs)

	got, err := s.GetPhone(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, *got)

	got.Stock = 99
	again, err := s.GetPhone(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Stock, "returned phones must be copies")
}

func TestMemoryStore_CreateRejectsInvalid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(nil)

	p := newPhone("iPhone 12", "Apple", domain.ConditionNew)
	p.BasePrice = -1
	p.Specs = ""
	err := s.CreatePhone(ctx, &p)
	require.ErrorIs(t, err, domain.ErrInvalidPhone)
	assert.Empty(t, p.Specs, "rejected phone keeps its fields")
	assert.Zero(t, p.ID)

	_, total, err := s.ListPhones(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestMemoryStore_IDsNeverReused(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(store.NewIDAllocator())

	a := newPhone("A", "Brand", domain.ConditionGood)
	b := newPhone("B", "Brand", domain.ConditionGood)
	require.NoError(t, s.CreatePhone(ctx, &a))
	require.NoError(t, s.CreatePhone(ctx, &b))
	require.NoError(t, s.DeletePhone(ctx, b.ID))

	c := newPhone("C", "Brand", domain.ConditionGood)
	require.NoError(t, s.CreatePhone(ctx, &c))
	assert.Equal(t, int64(3), c.ID)
}

func TestMemoryStore_CreatePhonesIsAllOrNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(nil)

	batch := []domain.Phone{
		newPhone("A", "Brand", domain.ConditionNew),
		{Model: "B", Brand: "Brand", BasePrice: 10, Stock: -1, Condition: domain.ConditionGood},
	}
	err := s.CreatePhones(ctx, batch)
	require.ErrorIs(t, err, domain.ErrInvalidPhone)
	assert.Contains(t, err.Error(), "phone 2")
	assert.Empty(t, batch[1].Specs, "rejected batch keeps its fields")

	_, total, err := s.ListPhones(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, total)

	batch[1].Stock = 0
	require.NoError(t, s.CreatePhones(ctx, batch))
	assert.Equal(t, int64(1), batch[0].ID)
	assert.Equal(t, int64(2), batch[1].ID)
	assert.Equal(t, domain.DefaultSpecs, batch[1].Specs)
}

func TestMemoryStore_ListPhones(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(nil)

	for _, p := range []domain.Phone{
		newPhone("Galaxy S21", "Samsung", domain.ConditionNew),
		newPhone("Pixel 7", "Google", domain.ConditionGood),
		newPhone("Galaxy A52", "Samsung", domain.ConditionScrap),
	} {
		require.NoError(t, s.CreatePhone(ctx, &p))
	}

	cond := domain.ConditionScrap

	tests := []struct {
		name       string
		query      *store.PhoneQuery
		wantModels []string
		wantTotal  int
	}{
		{
			name:       "all in insertion order",
			query:      &store.PhoneQuery{},
			wantModels: []string{"Galaxy S21", "Pixel 7", "Galaxy A52"},
			wantTotal:  3,
		},
		{
			name:       "search by brand",
			query:      &store.PhoneQuery{Search: "samsung"},
			wantModels: []string{"Galaxy S21", "Galaxy A52"},
			wantTotal:  2,
		},
		{
			name:       "search and condition",
			query:      &store.PhoneQuery{Search: "galaxy", Condition: &cond},
			wantModels: []string{"Galaxy A52"},
			wantTotal:  1,
		},
		{
			name:       "pagination keeps total",
			query:      &store.PhoneQuery{Limit: 1, Offset: 1},
			wantModels: []string{"Pixel 7"},
			wantTotal:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			phones, total, err := s.ListPhones(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			models := make([]string, 0, len(phones))
			for i := range phones {
				models = append(models, phones[i].Model)
			}
			assert.Equal(t, tt.wantModels, models)
		})
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(nil)

	_, err := s.GetPhone(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.DeletePhone(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryStore_Ping(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore(nil)
	require.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.NewMemoryStore(nil)

	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := newPhone(fmt.Sprintf("Model %d", i), "Brand", domain.ConditionGood)
			assert.NoError(t, s.CreatePhone(ctx, &p))
		}()
	}
	wg.Wait()

	phones, total, err := s.ListPhones(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, n, total)

	seen := make(map[int64]bool, n)
	for i := range phones {
		assert.False(t, seen[phones[i].ID], "duplicate id %d", phones[i].ID)
		seen[phones[i].ID] = true
	}
}
