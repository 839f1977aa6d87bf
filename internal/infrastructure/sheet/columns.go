package sheet

import "time"

// Field identifies an internal order field fed by, or feeding, a spreadsheet
// column.
type Field string

const (
	FieldNewOrOld            Field = "newOrOld"
	FieldCountry             Field = "country"
	FieldContinent           Field = "continent"
	FieldSource              Field = "source"
	FieldLeadNumber          Field = "leadNumber"
	FieldPaymentDate         Field = "paymentDate"
	FieldCompanyName         Field = "companyName"
	FieldContactName         Field = "contactName"
	FieldEmail               Field = "email"
	FieldInvoiceAmount       Field = "invoiceAmount"
	FieldPaymentAmount       Field = "paymentAmount"
	FieldClosedProduct       Field = "closedProduct"
	FieldBackgroundCheck     Field = "backgroundCheck"
	FieldPhone               Field = "phone"
	FieldOrderDate           Field = "orderDate"
	FieldCustomerNature      Field = "customerNature"
	FieldPurchaseOrderNumber Field = "purchaseOrderNumber"
)

// Kind classifies the value a field carries
type Kind int

const (
	KindText Kind = iota
	KindChoice
	KindDate
	KindNumber
)

// Placeholder is the sentinel literal substituted for empty required text
// fields. A required field that still holds the placeholder after defaulting
// is treated as missing.
const Placeholder = "-"

// Fixed column positions of the 21-column import layout
const (
	ColNewOrOld = iota
	ColCountry
	ColContinent
	ColSource
	ColLeadNumber
	ColPaymentDate
	ColCompanyName
	ColContactName
	ColEmail
	ColInvoiceAmount
	ColPaymentAmount
	ColClosedProduct
	ColBackgroundCheck
	ColPhone
	ColOrderDate
	ColCustomerNature
	ColInvoiceNumber
	ColPurchaseOrderNumber
	ColShippingDate
	ColTrackingNumber
	ColPaymentProof
)

// ImportColumnCount is the number of recognized import positions.
// ExportColumnCount is the strict subset emitted on export: the tracking
// number and payment proof columns are never written back, while the invoice
// number and shipping date columns reappear as always-empty placeholders.
// The 21-in/19-out asymmetry is fixed.
const (
	ImportColumnCount = 21
	ExportColumnCount = 19
)

// DefaultRule produces the substitute value for an empty required field.
// Exactly one of Literal and Compute is set.
type DefaultRule struct {
	Literal string
	Compute func(now time.Time) string
}

// Value evaluates the rule at mapping time
func (r DefaultRule) Value(now time.Time) string {
	if r.Compute != nil {
		return r.Compute(now)
	}
	return r.Literal
}

// FieldSpec binds one internal field to its fixed column position together
// with its policy: required flag, value kind, and default rule. Every
// required field has a default; optional fields have none and resolve to
// explicit absence, never to a sentinel.
type FieldSpec struct {
	Field    Field
	Column   int
	Required bool
	Kind     Kind
	Default  *DefaultRule
}

// Resolve applies the default policy to a raw cell: an empty cell on a
// required field yields the configured default, any other cell passes
// through unchanged.
func (s FieldSpec) Resolve(c Cell, now time.Time) Cell {
	if c.IsEmpty() && s.Required && s.Default != nil {
		return TextCell(s.Default.Value(now))
	}
	return c
}

// ImportLayout is the declarative column table consumed by the row mapper.
// Positions ColInvoiceNumber, ColShippingDate, ColTrackingNumber and
// ColPaymentProof are read but never stored, so they carry no spec.
var ImportLayout = []FieldSpec{
	{Field: FieldNewOrOld, Column: ColNewOrOld, Kind: KindChoice},
	{Field: FieldCountry, Column: ColCountry, Kind: KindText},
	{Field: FieldContinent, Column: ColContinent, Kind: KindText},
	{Field: FieldSource, Column: ColSource, Kind: KindText},
	{Field: FieldLeadNumber, Column: ColLeadNumber, Required: true, Kind: KindText, Default: &DefaultRule{Literal: Placeholder}},
	{Field: FieldPaymentDate, Column: ColPaymentDate, Kind: KindDate},
	{Field: FieldCompanyName, Column: ColCompanyName, Required: true, Kind: KindText, Default: &DefaultRule{Literal: Placeholder}},
	{Field: FieldContactName, Column: ColContactName, Kind: KindText},
	{Field: FieldEmail, Column: ColEmail, Kind: KindText},
	{Field: FieldInvoiceAmount, Column: ColInvoiceAmount, Kind: KindNumber},
	{Field: FieldPaymentAmount, Column: ColPaymentAmount, Kind: KindNumber},
	{Field: FieldClosedProduct, Column: ColClosedProduct, Required: true, Kind: KindText, Default: &DefaultRule{Literal: Placeholder}},
	{Field: FieldBackgroundCheck, Column: ColBackgroundCheck, Kind: KindText},
	{Field: FieldPhone, Column: ColPhone, Kind: KindText},
	{Field: FieldOrderDate, Column: ColOrderDate, Required: true, Kind: KindDate, Default: &DefaultRule{
		Compute: func(now time.Time) string { return now.Format("2006-01-02") },
	}},
	{Field: FieldCustomerNature, Column: ColCustomerNature, Kind: KindText},
	{Field: FieldPurchaseOrderNumber, Column: ColPurchaseOrderNumber, Kind: KindText},
}

// DiscardedImportColumns are the positions read during import whose values
// are always thrown away.
var DiscardedImportColumns = []int{
	ColInvoiceNumber,
	ColShippingDate,
	ColTrackingNumber,
	ColPaymentProof,
}

// ExportHeaders are the 19 configured header labels, in fixed order. The
// header row of every export carries exactly these labels regardless of data
// volume.
var ExportHeaders = []string{
	"New/Old Customer",
	"Country",
	"Continent",
	"Source",
	"Lead Number",
	"Payment Date",
	"Company Name",
	"Contact Name",
	"Email",
	"Invoice Amount",
	"Payment Amount",
	"Closed Product",
	"Background Check",
	"Phone",
	"Record Date",
	"Customer Nature",
	"Invoice Number",
	"PO Number",
	"Shipping Date",
}

// SpecFor returns the field spec for the given field
func SpecFor(f Field) (FieldSpec, bool) {
	for _, spec := range ImportLayout {
		if spec.Field == f {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
