package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tradecrm/backend/internal/domain/shared"
)

// Contact holds the contact person attached to an order. Every order carries
// exactly one contact; missing parts are stored as the "-" placeholder.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ContactList is a JSON-serialized list of contacts, stored in a single
// text column the way the order schema keeps contact_info.
type ContactList []Contact

// Value implements driver.Valuer
func (l ContactList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contacts: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *ContactList) Scan(value any) error {
	if value == nil {
		*l = ContactList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported contact list type %T", value)
	}
	if len(data) == 0 {
		*l = ContactList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Order represents one persisted trade order. Dates are stored as canonical
// YYYY-MM-DD strings; OrderDate is the primary record date, derived from the
// payment date during import. Amount fields are nil when not provided.
type Order struct {
	shared.BaseEntity
	NewOrOld            string           `gorm:"type:varchar(50)"`
	Country             string           `gorm:"type:varchar(100)"`
	Continent           string           `gorm:"type:varchar(100)"`
	Source              string           `gorm:"type:varchar(100)"`
	LeadNumber          string           `gorm:"type:varchar(100);not null;index"`
	PaymentDate         string           `gorm:"type:varchar(10)"`
	CompanyName         string           `gorm:"type:varchar(200);not null;index"`
	Contacts            ContactList      `gorm:"type:text"`
	InvoiceAmount       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	PaymentAmount       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ClosedProduct       string           `gorm:"type:varchar(200);not null"`
	BackgroundCheck     string           `gorm:"type:text"`
	OrderDate           string           `gorm:"type:varchar(10);not null;index"`
	CustomerNature      string           `gorm:"type:varchar(100)"`
	PurchaseOrderNumber string           `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// PrimaryContact returns the first contact, or false if the order has none
func (o *Order) PrimaryContact() (Contact, bool) {
	if len(o.Contacts) == 0 {
		return Contact{}, false
	}
	return o.Contacts[0], true
}
