package exportapp

import (
	"context"
	"time"

	"github.com/tradecrm/backend/internal/domain/order"
	"github.com/tradecrm/backend/internal/infrastructure/sheet"
)

// OrderExportService assembles the full order set into a workbook: a fixed
// 19-label header row plus one row per order, most recent record date first.
type OrderExportService struct {
	orders     order.Repository
	clock      func() time.Time
	sheetName  string
	filePrefix string
}

// NewOrderExportService creates an export service. A nil clock falls back to
// time.Now; empty sheet name and file prefix fall back to defaults.
func NewOrderExportService(orders order.Repository, clock func() time.Time, sheetName, filePrefix string) *OrderExportService {
	if clock == nil {
		clock = time.Now
	}
	if sheetName == "" {
		sheetName = sheet.DefaultSheetName
	}
	if filePrefix == "" {
		filePrefix = "orders_"
	}
	return &OrderExportService{
		orders:     orders,
		clock:      clock,
		sheetName:  sheetName,
		filePrefix: filePrefix,
	}
}

// Export loads every persisted order and serializes the workbook bytes. An
// empty store yields a header-only workbook.
func (s *OrderExportService) Export(ctx context.Context) ([]byte, error) {
	orders, err := s.orders.FindAllByRecordDateDesc(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(orders))
	for i := range orders {
		rows = append(rows, exportRow(&orders[i]))
	}

	return sheet.Write(sheet.ExportHeaders, rows, s.sheetName)
}

// FileName returns the suggested export file name for the current instant
func (s *OrderExportService) FileName() string {
	return sheet.FileName(s.filePrefix, s.clock())
}

// exportRow maps one order through the export column layout. The invoice
// number and shipping date positions are not backed by any stored field and
// are always emitted empty; absent amounts map to an empty cell, not zero;
// an order without contacts maps to empty name, email and phone cells.
func exportRow(o *order.Order) []any {
	row := make([]any, sheet.ExportColumnCount)
	for i := range row {
		row[i] = ""
	}

	contact, _ := o.PrimaryContact()

	row[sheet.ColNewOrOld] = o.NewOrOld
	row[sheet.ColCountry] = o.Country
	row[sheet.ColContinent] = o.Continent
	row[sheet.ColSource] = o.Source
	row[sheet.ColLeadNumber] = o.LeadNumber
	row[sheet.ColPaymentDate] = o.PaymentDate
	row[sheet.ColCompanyName] = o.CompanyName
	row[sheet.ColContactName] = contact.Name
	row[sheet.ColEmail] = contact.Email
	if o.InvoiceAmount != nil {
		row[sheet.ColInvoiceAmount] = o.InvoiceAmount.InexactFloat64()
	}
	if o.PaymentAmount != nil {
		row[sheet.ColPaymentAmount] = o.PaymentAmount.InexactFloat64()
	}
	row[sheet.ColClosedProduct] = o.ClosedProduct
	row[sheet.ColBackgroundCheck] = o.BackgroundCheck
	row[sheet.ColPhone] = contact.Phone
	row[sheet.ColOrderDate] = o.OrderDate
	row[sheet.ColCustomerNature] = o.CustomerNature
	row[sheet.ColPurchaseOrderNumber] = o.PurchaseOrderNumber

	return row
}
