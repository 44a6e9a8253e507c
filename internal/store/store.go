// Package store defines the datastore abstraction for phone-resale.
// Handlers and the engine depend on the Store interface, never on a concrete
// implementation, so they can be tested against mocks.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// ErrNotFound is returned when no phone has the requested id.
var ErrNotFound = errors.New("phone not found")

// Store defines all data access operations for phone-resale.
type Store interface {
	// CreatePhone validates p, assigns it a fresh id and stores it.
	CreatePhone(ctx context.Context, p *domain.Phone) error
	// CreatePhones stores every phone or none of them. Ids are assigned in
	// slice order.
	CreatePhones(ctx context.Context, phones []domain.Phone) error
	GetPhone(ctx context.Context, id int64) (*domain.Phone, error)
	ListPhones(ctx context.Context, q *PhoneQuery) ([]domain.Phone, int, error)
	DeletePhone(ctx context.Context, id int64) error

	// Health
	Ping(ctx context.Context) error
}
