package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecrm/backend/internal/domain/order"
	"github.com/tradecrm/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// OrderStore implements order.Gateway on top of the GORM repositories.
// RunAtomically rebinds the store to a transaction, so the repositories the
// callback sees share one begin/commit bracket.
type OrderStore struct {
	db        *gorm.DB
	customers *GormCustomerRepository
	orders    *GormOrderRepository
}

// NewOrderStore creates a new OrderStore
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{
		db:        db,
		customers: NewGormCustomerRepository(db),
		orders:    NewGormOrderRepository(db),
	}
}

// CustomerExists checks whether a customer keyed by company name exists
func (s *OrderStore) CustomerExists(ctx context.Context, companyName string) (bool, error) {
	return s.customers.Exists(ctx, companyName)
}

// CreateCustomer creates a customer with the given company name
func (s *OrderStore) CreateCustomer(ctx context.Context, companyName, businessOpportunity string) error {
	customer, err := partner.NewCustomer(companyName, businessOpportunity)
	if err != nil {
		return err
	}
	return s.customers.Create(ctx, customer)
}

// UpdateCustomerOpportunity replaces a customer's business opportunity text
func (s *OrderStore) UpdateCustomerOpportunity(ctx context.Context, companyName, text string) error {
	return s.customers.UpdateOpportunity(ctx, companyName, text)
}

// InsertOrder persists one order and returns its ID
func (s *OrderStore) InsertOrder(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	return s.orders.Insert(ctx, o)
}

// RunAtomically executes fn inside a transaction. The callback receives a
// transaction-bound Gateway; an error from fn rolls back every write made
// through it.
func (s *OrderStore) RunAtomically(ctx context.Context, fn func(tx order.Gateway) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewOrderStore(tx))
	})
}
