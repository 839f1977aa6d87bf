package importapp

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradecrm/backend/internal/domain/order"
	"github.com/tradecrm/backend/internal/domain/shared"
	"github.com/tradecrm/backend/internal/infrastructure/sheet"
)

// Candidate is the record assembled from one spreadsheet row before
// persistence. Field values are the post-default plain strings; amount
// fields keep their raw text until validation has passed.
type Candidate struct {
	NewOrOld            string
	Country             string
	Continent           string
	Source              string
	LeadNumber          string
	PaymentDate         string
	CompanyName         string
	Contact             order.Contact
	InvoiceAmount       string
	PaymentAmount       string
	ClosedProduct       string
	BackgroundCheck     string
	OrderDate           string
	CustomerNature      string
	PurchaseOrderNumber string
}

// ToOrder converts a validated candidate into a persistable order
func (c *Candidate) ToOrder() (*order.Order, error) {
	o := &order.Order{
		BaseEntity:          shared.NewBaseEntity(),
		NewOrOld:            c.NewOrOld,
		Country:             c.Country,
		Continent:           c.Continent,
		Source:              c.Source,
		LeadNumber:          c.LeadNumber,
		PaymentDate:         c.PaymentDate,
		CompanyName:         c.CompanyName,
		Contacts:            order.ContactList{c.Contact},
		ClosedProduct:       c.ClosedProduct,
		BackgroundCheck:     c.BackgroundCheck,
		OrderDate:           c.OrderDate,
		CustomerNature:      c.CustomerNature,
		PurchaseOrderNumber: c.PurchaseOrderNumber,
	}

	if c.InvoiceAmount != "" {
		d, err := decimal.NewFromString(c.InvoiceAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid invoice amount %q: %w", c.InvoiceAmount, err)
		}
		o.InvoiceAmount = &d
	}
	if c.PaymentAmount != "" {
		d, err := decimal.NewFromString(c.PaymentAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid payment amount %q: %w", c.PaymentAmount, err)
		}
		o.PaymentAmount = &d
	}

	return o, nil
}

// Mapper converts one raw spreadsheet row into a candidate record using the
// declarative column layout and its field policy. The clock feeds computed
// defaults so imports are deterministic under test.
type Mapper struct {
	clock func() time.Time
}

// NewMapper creates a row mapper. A nil clock falls back to time.Now.
func NewMapper(clock func() time.Time) *Mapper {
	if clock == nil {
		clock = time.Now
	}
	return &Mapper{clock: clock}
}

// Map assembles a candidate from one row. A row whose payment date is absent
// cannot derive its primary record date and is rejected here rather than
// mapped further; the returned issues mark the row for exclusion.
func (m *Mapper) Map(row sheet.Row) (*Candidate, []sheet.RowError) {
	now := m.clock()
	values := make(map[sheet.Field]string, len(sheet.ImportLayout))
	for _, spec := range sheet.ImportLayout {
		cell := spec.Resolve(row.Cell(spec.Column), now)
		if spec.Kind == sheet.KindDate && !cell.IsEmpty() {
			values[spec.Field] = sheet.NormalizeDateValue(cell.Text())
		} else {
			values[spec.Field] = cell.Text()
		}
	}

	cand := &Candidate{
		NewOrOld:    values[sheet.FieldNewOrOld],
		Country:     values[sheet.FieldCountry],
		Continent:   values[sheet.FieldContinent],
		Source:      values[sheet.FieldSource],
		LeadNumber:  values[sheet.FieldLeadNumber],
		PaymentDate: values[sheet.FieldPaymentDate],
		CompanyName: values[sheet.FieldCompanyName],
		Contact: order.Contact{
			Name:  orPlaceholder(values[sheet.FieldContactName]),
			Email: orPlaceholder(values[sheet.FieldEmail]),
			Phone: orPlaceholder(values[sheet.FieldPhone]),
		},
		InvoiceAmount:       values[sheet.FieldInvoiceAmount],
		PaymentAmount:       values[sheet.FieldPaymentAmount],
		ClosedProduct:       values[sheet.FieldClosedProduct],
		BackgroundCheck:     values[sheet.FieldBackgroundCheck],
		CustomerNature:      values[sheet.FieldCustomerNature],
		PurchaseOrderNumber: values[sheet.FieldPurchaseOrderNumber],
	}

	if cand.PaymentDate == "" {
		return cand, []sheet.RowError{
			sheet.NewRowErrorWithValue(row.Number, string(sheet.FieldPaymentDate),
				"payment date is empty, row skipped", cand.PaymentDate),
		}
	}

	cand.PaymentDate = sheet.NormalizeDateSeparators(cand.PaymentDate)

	// The record date is derived from the payment date, not read from the
	// sheet's own record date column.
	cand.OrderDate = cand.PaymentDate

	return cand, nil
}

// orPlaceholder substitutes the placeholder dash for empty contact parts
func orPlaceholder(value string) string {
	if value == "" {
		return sheet.Placeholder
	}
	return value
}
