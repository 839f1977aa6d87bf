package order

import (
	"context"

	"github.com/google/uuid"
)

// Gateway is the persistence collaborator consumed by the bulk import
// pipeline. RunAtomically brackets a batch of customer and order writes in a
// single atomic scope: the callback receives a transaction-bound Gateway and
// an error returned from it rolls back everything written inside the scope.
type Gateway interface {
	// CustomerExists checks whether a customer keyed by company name exists
	CustomerExists(ctx context.Context, companyName string) (bool, error)

	// CreateCustomer creates a customer with the given company name and
	// business opportunity text
	CreateCustomer(ctx context.Context, companyName, businessOpportunity string) error

	// UpdateCustomerOpportunity replaces a customer's business opportunity text
	UpdateCustomerOpportunity(ctx context.Context, companyName, text string) error

	// InsertOrder persists one order and returns its ID
	InsertOrder(ctx context.Context, o *Order) (uuid.UUID, error)

	// RunAtomically executes fn inside a transaction
	RunAtomically(ctx context.Context, fn func(tx Gateway) error) error
}
