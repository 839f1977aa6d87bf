package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradecrm/backend/internal/domain/order"
	"github.com/tradecrm/backend/internal/domain/partner"
	"github.com/tradecrm/backend/internal/domain/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&partner.Customer{}, &order.Order{}))
	return db
}

func TestGormCustomerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by company name", func(t *testing.T) {
		repo := NewGormCustomerRepository(setupTestDB(t))

		customer, err := partner.NewCustomer("ABC", "warm lead")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, customer))

		found, err := repo.FindByCompanyName(ctx, "ABC")
		require.NoError(t, err)
		assert.Equal(t, customer.ID, found.ID)
		assert.Equal(t, "warm lead", found.BusinessOpportunity)
	})

	t.Run("find missing customer returns not found", func(t *testing.T) {
		repo := NewGormCustomerRepository(setupTestDB(t))

		_, err := repo.FindByCompanyName(ctx, "nobody")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		repo := NewGormCustomerRepository(setupTestDB(t))

		exists, err := repo.Exists(ctx, "ABC")
		require.NoError(t, err)
		assert.False(t, exists)

		customer, err := partner.NewCustomer("ABC", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, customer))

		exists, err = repo.Exists(ctx, "ABC")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update opportunity", func(t *testing.T) {
		repo := NewGormCustomerRepository(setupTestDB(t))

		customer, err := partner.NewCustomer("ABC", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, customer))

		require.NoError(t, repo.UpdateOpportunity(ctx, "ABC", "expansion deal"))

		found, err := repo.FindByCompanyName(ctx, "ABC")
		require.NoError(t, err)
		assert.Equal(t, "expansion deal", found.BusinessOpportunity)
	})

	t.Run("update opportunity of missing customer returns not found", func(t *testing.T) {
		repo := NewGormCustomerRepository(setupTestDB(t))
		err := repo.UpdateOpportunity(ctx, "nobody", "text")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("list returns all customers", func(t *testing.T) {
		repo := NewGormCustomerRepository(setupTestDB(t))

		for _, name := range []string{"ABC", "DEF"} {
			customer, err := partner.NewCustomer(name, "")
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, customer))
		}

		customers, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, customers, 2)
	})

	t.Run("duplicate company name is rejected", func(t *testing.T) {
		repo := NewGormCustomerRepository(setupTestDB(t))

		first, err := partner.NewCustomer("ABC", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))

		second, err := partner.NewCustomer("ABC", "")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, second))
	})
}
