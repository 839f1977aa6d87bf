package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"plain address", "user@example.com", true},
		{"subdomain", "a@mail.example.co", true},
		{"surrounding whitespace is trimmed", "  user@example.com  ", true},
		{"missing at", "userexample.com", false},
		{"two ats", "user@@example.com", false},
		{"no dot after at", "user@example", false},
		{"embedded whitespace", "us er@example.com", false},
		{"empty", "", false},
		{"placeholder dash", "-", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}

	t.Run("is pure", func(t *testing.T) {
		assert.Equal(t, ValidateEmail("user@example.com"), ValidateEmail("user@example.com"))
		assert.Equal(t, ValidateEmail("nope"), ValidateEmail("nope"))
	})
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"dashed", "2024-01-15", true},
		{"dotted", "2024.01.15", true},
		{"leap day on leap year", "2024-02-29", true},
		{"leap day on non-leap year", "2023-02-29", false},
		{"day out of range", "2024-02-30", false},
		{"month out of range", "2024-13-01", false},
		{"single digit parts", "2024-1-5", false},
		{"slashes not accepted", "2024/01/15", false},
		{"not a date", "abc", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateDate(tt.date))
		})
	}

	t.Run("is pure", func(t *testing.T) {
		assert.Equal(t, ValidateDate("2024-01-15"), ValidateDate("2024-01-15"))
	})
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   bool
	}{
		{"absence is valid", "", true},
		{"whitespace only is valid", "  ", true},
		{"zero", "0", true},
		{"positive integer", "100", true},
		{"positive decimal", "1234.56", true},
		{"negative", "-100", false},
		{"not a number", "abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAmount(tt.amount))
		})
	}

	t.Run("is pure", func(t *testing.T) {
		assert.Equal(t, ValidateAmount("-1"), ValidateAmount("-1"))
	})
}

func TestValidateOrderFields(t *testing.T) {
	t.Run("clean fields yield no messages", func(t *testing.T) {
		msgs := ValidateOrderFields(OrderFields{
			Email:         "user@example.com",
			PaymentDate:   "2024-01-15",
			RecordDate:    "2024-01-15",
			InvoiceAmount: "100",
			PaymentAmount: "90.5",
		})
		assert.Empty(t, msgs)
	})

	t.Run("absent optionals yield no messages", func(t *testing.T) {
		assert.Empty(t, ValidateOrderFields(OrderFields{}))
	})

	t.Run("placeholder email is skipped", func(t *testing.T) {
		assert.Empty(t, ValidateOrderFields(OrderFields{Email: "-"}))
	})

	t.Run("does not short-circuit on first failure", func(t *testing.T) {
		msgs := ValidateOrderFields(OrderFields{
			Email:         "not-an-email",
			PaymentDate:   "2024-02-30",
			RecordDate:    "nope",
			InvoiceAmount: "-100",
			PaymentAmount: "abc",
		})
		assert.Len(t, msgs, 5)
		assert.Contains(t, msgs, "invalid email format")
		assert.Contains(t, msgs, "invalid payment date format")
		assert.Contains(t, msgs, "invalid record date format")
		assert.Contains(t, msgs, "invoice amount must be a non-negative number")
		assert.Contains(t, msgs, "payment amount must be a non-negative number")
	})
}
