package sheet

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}[-.]\d{2}[-.]\d{2}$`)
)

// ValidateEmail reports whether the value looks like local@domain.tld: no
// embedded whitespace, exactly one @, at least one dot after it. The value
// is trimmed before matching.
func ValidateEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	return emailPattern.MatchString(trimmed)
}

// ValidateDate reports whether the value is a real calendar date in
// YYYY-MM-DD or YYYY.MM.DD form. The parsed components must round-trip
// exactly, which rejects the likes of 2024-02-30 and month 13.
func ValidateDate(date string) bool {
	trimmed := strings.TrimSpace(date)
	if !datePattern.MatchString(trimmed) {
		return false
	}

	normalized := NormalizeDateSeparators(trimmed)
	t, err := time.Parse("2006-01-02", normalized)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == normalized
}

// ValidateAmount reports whether the value is an acceptable amount: the
// empty string is valid (amounts are optional), anything else must parse to
// a finite, non-negative number.
func ValidateAmount(amount string) bool {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return true
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// OrderFields carries the raw field values checked by ValidateOrderFields.
// Empty strings mean the field was not provided.
type OrderFields struct {
	Email         string
	PaymentDate   string
	RecordDate    string
	InvoiceAmount string
	PaymentAmount string
}

// ValidateOrderFields runs every shape check over the given fields and
// returns the full list of failure messages; it never short-circuits on the
// first failure. The email placeholder dash is skipped: it marks an email
// that was never provided.
func ValidateOrderFields(f OrderFields) []string {
	var msgs []string

	if f.Email != "" && f.Email != Placeholder && !ValidateEmail(f.Email) {
		msgs = append(msgs, "invalid email format")
	}
	if f.PaymentDate != "" && !ValidateDate(f.PaymentDate) {
		msgs = append(msgs, "invalid payment date format")
	}
	if f.RecordDate != "" && !ValidateDate(f.RecordDate) {
		msgs = append(msgs, "invalid record date format")
	}
	if f.InvoiceAmount != "" && !ValidateAmount(f.InvoiceAmount) {
		msgs = append(msgs, "invoice amount must be a non-negative number")
	}
	if f.PaymentAmount != "" && !ValidateAmount(f.PaymentAmount) {
		msgs = append(msgs, "payment amount must be a non-negative number")
	}

	return msgs
}
