package partner

import (
	"strings"
	"time"

	"github.com/tradecrm/backend/internal/domain/shared"
)

// Customer represents a customer in the partner context. The company name is
// the natural key: a customer is created implicitly the first time a company
// name appears, either through a spreadsheet import or a direct order
// creation path.
type Customer struct {
	shared.BaseEntity
	CompanyName         string `gorm:"type:varchar(200);not null;uniqueIndex"`
	BusinessOpportunity string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with the given company name
func NewCustomer(companyName, businessOpportunity string) (*Customer, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(companyName) > 200 {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}

	return &Customer{
		BaseEntity:          shared.NewBaseEntity(),
		CompanyName:         companyName,
		BusinessOpportunity: businessOpportunity,
	}, nil
}

// UpdateOpportunity replaces the customer's business opportunity text
func (c *Customer) UpdateOpportunity(text string) {
	c.BusinessOpportunity = text
	c.UpdatedAt = time.Now()
}
