package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for order persistence
type Repository interface {
	// Insert persists a new order and returns its generated ID
	Insert(ctx context.Context, o *Order) (uuid.UUID, error)

	// FindAllByRecordDateDesc returns every order, most recent record date
	// first, with creation time as a stable tie-break
	FindAllByRecordDateDesc(ctx context.Context) ([]Order, error)

	// Count returns the total number of orders
	Count(ctx context.Context) (int64, error)
}
