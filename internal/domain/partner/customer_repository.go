package partner

import "context"

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByCompanyName finds a customer by its company name
	FindByCompanyName(ctx context.Context, companyName string) (*Customer, error)

	// Exists checks whether a customer with the given company name exists
	Exists(ctx context.Context, companyName string) (bool, error)

	// Create persists a new customer
	Create(ctx context.Context, customer *Customer) error

	// UpdateOpportunity updates the business opportunity text of a customer
	UpdateOpportunity(ctx context.Context, companyName, text string) error

	// List returns all customers ordered by creation time, newest first
	List(ctx context.Context) ([]Customer, error)
}
