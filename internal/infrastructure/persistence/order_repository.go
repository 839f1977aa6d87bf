package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecrm/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: tx}
}

// Insert persists a new order and returns its generated ID
func (r *GormOrderRepository) Insert(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return uuid.Nil, err
	}
	return o.ID, nil
}

// FindAllByRecordDateDesc returns every order, most recent record date first.
// Creation time and ID break ties deterministically for same-date rows.
func (r *GormOrderRepository) FindAllByRecordDateDesc(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).
		Order("order_date DESC").
		Order("created_at DESC").
		Order("id").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
