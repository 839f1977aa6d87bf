package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradecrm/backend/internal/domain/order"
	"github.com/tradecrm/backend/internal/domain/shared"
)

func testOrder(orderDate string) *order.Order {
	return &order.Order{
		BaseEntity:    shared.NewBaseEntity(),
		NewOrOld:      "new",
		LeadNumber:    "L-001",
		CompanyName:   "ABC",
		ClosedProduct: "widgets",
		PaymentDate:   orderDate,
		OrderDate:     orderDate,
		Contacts:      order.ContactList{{Name: "Ann", Email: "-", Phone: "-"}},
	}
}

func TestGormOrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("insert returns the order id", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))

		o := testOrder("2024-01-15")
		id, err := repo.Insert(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, o.ID, id)
		assert.NotEqual(t, uuid.Nil, id)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("contacts survive a round trip", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))

		_, err := repo.Insert(ctx, testOrder("2024-01-15"))
		require.NoError(t, err)

		orders, err := repo.FindAllByRecordDateDesc(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		contact, ok := orders[0].PrimaryContact()
		require.True(t, ok)
		assert.Equal(t, "Ann", contact.Name)
	})

	t.Run("orders come back newest record date first", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))

		for _, date := range []string{"2024-01-10", "2024-03-05", "2024-02-20"} {
			_, err := repo.Insert(ctx, testOrder(date))
			require.NoError(t, err)
		}

		orders, err := repo.FindAllByRecordDateDesc(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "2024-03-05", orders[0].OrderDate)
		assert.Equal(t, "2024-02-20", orders[1].OrderDate)
		assert.Equal(t, "2024-01-10", orders[2].OrderDate)
	})

	t.Run("ties on record date break on creation time", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))

		first := testOrder("2024-01-15")
		first.CreatedAt = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
		first.LeadNumber = "L-early"
		second := testOrder("2024-01-15")
		second.CreatedAt = time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
		second.LeadNumber = "L-late"

		_, err := repo.Insert(ctx, first)
		require.NoError(t, err)
		_, err = repo.Insert(ctx, second)
		require.NoError(t, err)

		orders, err := repo.FindAllByRecordDateDesc(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "L-late", orders[0].LeadNumber)
		assert.Equal(t, "L-early", orders[1].LeadNumber)
	})

	t.Run("count on empty table is zero", func(t *testing.T) {
		repo := NewGormOrderRepository(setupTestDB(t))
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
