package exportapp

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradecrm/backend/internal/domain/order"
	"github.com/tradecrm/backend/internal/domain/shared"
	"github.com/tradecrm/backend/internal/infrastructure/sheet"
	"github.com/xuri/excelize/v2"
)

type fakeOrderRepo struct {
	orders []order.Order
}

func (r *fakeOrderRepo) Insert(_ context.Context, o *order.Order) (uuid.UUID, error) {
	r.orders = append(r.orders, *o)
	return o.ID, nil
}

func (r *fakeOrderRepo) FindAllByRecordDateDesc(_ context.Context) ([]order.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 10, 30, 45, 0, time.UTC)
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	require.NotEmpty(t, sheets)
	rows, err := f.GetRows(sheets[0])
	require.NoError(t, err)
	return rows
}

func TestOrderExportService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("zero orders yields header-only workbook", func(t *testing.T) {
		svc := NewOrderExportService(&fakeOrderRepo{}, fixedClock, "", "")

		data, err := svc.Export(ctx)
		require.NoError(t, err)

		rows := readRows(t, data)
		require.Len(t, rows, 1)
		assert.Equal(t, sheet.ExportHeaders, rows[0])
	})

	t.Run("maps one order to one 19-column row", func(t *testing.T) {
		amount := decimal.NewFromInt(100)
		repo := &fakeOrderRepo{orders: []order.Order{{
			BaseEntity:          shared.NewBaseEntity(),
			NewOrOld:            "New",
			Country:             "Germany",
			LeadNumber:          "LEAD001",
			PaymentDate:         "2024-01-15",
			CompanyName:         "ABC",
			Contacts:            order.ContactList{{Name: "Alice", Email: "alice@abc.com", Phone: "-"}},
			InvoiceAmount:       &amount,
			ClosedProduct:       "P1",
			OrderDate:           "2024-01-15",
			PurchaseOrderNumber: "PO-1",
		}}}
		svc := NewOrderExportService(repo, fixedClock, "", "")

		data, err := svc.Export(ctx)
		require.NoError(t, err)

		rows := readRows(t, data)
		require.Len(t, rows, 2)
		row := rows[1]
		assert.Equal(t, "LEAD001", row[sheet.ColLeadNumber])
		assert.Equal(t, "ABC", row[sheet.ColCompanyName])
		assert.Equal(t, "Alice", row[sheet.ColContactName])
		assert.Equal(t, "alice@abc.com", row[sheet.ColEmail])
		assert.Equal(t, "100", row[sheet.ColInvoiceAmount])
		assert.Equal(t, "PO-1", row[sheet.ColPurchaseOrderNumber])
	})

	t.Run("system-absent columns are always empty", func(t *testing.T) {
		repo := &fakeOrderRepo{orders: []order.Order{{
			BaseEntity:  shared.NewBaseEntity(),
			LeadNumber:  "LEAD001",
			CompanyName: "ABC",
			OrderDate:   "2024-01-15",
		}}}
		svc := NewOrderExportService(repo, fixedClock, "", "")

		data, err := svc.Export(ctx)
		require.NoError(t, err)

		rows := readRows(t, data)
		require.Len(t, rows, 2)
		row := rows[1]
		if len(row) > sheet.ColInvoiceNumber {
			assert.Equal(t, "", row[sheet.ColInvoiceNumber])
		}
		if len(row) > sheet.ColShippingDate {
			assert.Equal(t, "", row[sheet.ColShippingDate])
		}
	})

	t.Run("absent amounts and contacts map to empty cells", func(t *testing.T) {
		repo := &fakeOrderRepo{orders: []order.Order{{
			BaseEntity:  shared.NewBaseEntity(),
			LeadNumber:  "LEAD001",
			CompanyName: "ABC",
			OrderDate:   "2024-01-15",
		}}}
		svc := NewOrderExportService(repo, fixedClock, "", "")

		data, err := svc.Export(ctx)
		require.NoError(t, err)

		rows := readRows(t, data)
		row := rows[1]
		if len(row) > sheet.ColInvoiceAmount {
			assert.Equal(t, "", row[sheet.ColInvoiceAmount])
		}
		if len(row) > sheet.ColContactName {
			assert.Equal(t, "", row[sheet.ColContactName])
		}
	})
}

func TestOrderExportService_FileName(t *testing.T) {
	svc := NewOrderExportService(&fakeOrderRepo{}, fixedClock, "", "")
	assert.Equal(t, "orders_20240601_103045.xlsx", svc.FileName())

	custom := NewOrderExportService(&fakeOrderRepo{}, fixedClock, "", "trade_")
	assert.Equal(t, "trade_20240601_103045.xlsx", custom.FileName())
}
