package persistence

import (
	"context"
	"errors"

	"github.com/tradecrm/backend/internal/domain/partner"
	"github.com/tradecrm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: tx}
}

// FindByCompanyName finds a customer by its company name
func (r *GormCustomerRepository) FindByCompanyName(ctx context.Context, companyName string) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).
		Where("company_name = ?", companyName).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Exists checks whether a customer with the given company name exists
func (r *GormCustomerRepository) Exists(ctx context.Context, companyName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Customer{}).
		Where("company_name = ?", companyName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// UpdateOpportunity updates the business opportunity text of a customer
func (r *GormCustomerRepository) UpdateOpportunity(ctx context.Context, companyName, text string) error {
	result := r.db.WithContext(ctx).
		Model(&partner.Customer{}).
		Where("company_name = ?", companyName).
		Update("business_opportunity", text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// List returns all customers ordered by creation time, newest first
func (r *GormCustomerRepository) List(ctx context.Context) ([]partner.Customer, error) {
	var customers []partner.Customer
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
