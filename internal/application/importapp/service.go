package importapp

import (
	"context"
	"time"

	"github.com/tradecrm/backend/internal/domain/order"
	"github.com/tradecrm/backend/internal/infrastructure/sheet"
	"go.uber.org/zap"
)

// Result is the outcome of one import call. FailureCount counts rows
// excluded from the persistence batch; Errors lists every row-level issue in
// row order, with batch-level issues appended last.
type Result struct {
	SuccessCount int              `json:"successCount"`
	FailureCount int              `json:"failureCount"`
	Errors       []sheet.RowError `json:"errors"`
}

// OrderImportService drives the bulk spreadsheet import: parse, per-row
// mapping and validation with full fault isolation, then one atomic batch
// write of the insertable set.
type OrderImportService struct {
	gateway order.Gateway
	mapper  *Mapper
	log     *zap.Logger
}

// NewOrderImportService creates an import service. A nil clock falls back to
// time.Now, a nil logger to a no-op logger.
func NewOrderImportService(gateway order.Gateway, clock func() time.Time, log *zap.Logger) *OrderImportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderImportService{
		gateway: gateway,
		mapper:  NewMapper(clock),
		log:     log,
	}
}

// Import reconciles a workbook against the order store and reports the
// outcome. Parse failures abort the whole import with a single file-level
// issue; row failures exclude only their own row.
func (s *OrderImportService) Import(ctx context.Context, data []byte) (*Result, error) {
	result := &Result{Errors: []sheet.RowError{}}

	rows, err := sheet.Parse(data)
	if err != nil {
		result.Errors = append(result.Errors,
			sheet.NewRowError(0, sheet.FieldFile, "failed to parse workbook: "+err.Error()))
		return result, nil
	}

	var insertable []*Candidate
	for _, row := range rows {
		if row.IsBlank() {
			continue
		}

		cand, issues := s.mapper.Map(row)
		if len(issues) == 0 {
			issues = validateCandidate(cand, row.Number)
		}
		if len(issues) > 0 {
			result.FailureCount++
			result.Errors = append(result.Errors, issues...)
			continue
		}

		insertable = append(insertable, cand)
	}

	if len(insertable) > 0 {
		inserted, err := s.insertBatch(ctx, insertable)
		if err != nil {
			result.Errors = append(result.Errors,
				sheet.NewRowError(0, sheet.FieldBatch, "batch import failed: "+err.Error()))
			result.FailureCount += len(insertable)
		} else {
			result.SuccessCount = inserted
		}
	}

	s.log.Info("import finished",
		zap.Int("successCount", result.SuccessCount),
		zap.Int("failureCount", result.FailureCount),
		zap.Int("issues", len(result.Errors)),
	)

	return result, nil
}

// validateCandidate runs the shape checks and the required-field presence
// checks over one mapped candidate. Presence is checked on the post-default
// value: a required field defaulted to the placeholder dash is still
// missing.
func validateCandidate(c *Candidate, rowNumber int) []sheet.RowError {
	var issues []sheet.RowError

	for _, msg := range sheet.ValidateOrderFields(sheet.OrderFields{
		Email:         c.Contact.Email,
		PaymentDate:   c.PaymentDate,
		RecordDate:    c.OrderDate,
		InvoiceAmount: c.InvoiceAmount,
		PaymentAmount: c.PaymentAmount,
	}) {
		issues = append(issues, sheet.NewRowError(rowNumber, sheet.FieldValidation, msg))
	}

	if c.LeadNumber == "" || c.LeadNumber == sheet.Placeholder {
		issues = append(issues, sheet.NewRowErrorWithValue(rowNumber,
			string(sheet.FieldLeadNumber), "lead number is required", c.LeadNumber))
	}
	if c.CompanyName == "" || c.CompanyName == sheet.Placeholder {
		issues = append(issues, sheet.NewRowErrorWithValue(rowNumber,
			string(sheet.FieldCompanyName), "company name is required", c.CompanyName))
	}
	if c.ClosedProduct == "" || c.ClosedProduct == sheet.Placeholder {
		issues = append(issues, sheet.NewRowErrorWithValue(rowNumber,
			string(sheet.FieldClosedProduct), "closed product is required", c.ClosedProduct))
	}
	if c.OrderDate == "" {
		issues = append(issues, sheet.NewRowErrorWithValue(rowNumber,
			string(sheet.FieldOrderDate), "record date is required", c.OrderDate))
	}

	return issues
}

// insertBatch persists the insertable set under one atomic scope: for each
// record the owning customer is created on first sight, then the order is
// inserted. An individual record failure inside the scope is logged and the
// record skipped without rollback or a reported issue, so the returned count
// reports only records actually inserted.
func (s *OrderImportService) insertBatch(ctx context.Context, candidates []*Candidate) (int, error) {
	inserted := 0

	err := s.gateway.RunAtomically(ctx, func(tx order.Gateway) error {
		for _, cand := range candidates {
			o, err := cand.ToOrder()
			if err != nil {
				s.log.Warn("order build failed, record skipped",
					zap.String("leadNumber", cand.LeadNumber), zap.Error(err))
				continue
			}

			exists, err := tx.CustomerExists(ctx, o.CompanyName)
			if err != nil {
				s.log.Warn("customer lookup failed, record skipped",
					zap.String("companyName", o.CompanyName), zap.Error(err))
				continue
			}
			if !exists {
				if err := tx.CreateCustomer(ctx, o.CompanyName, ""); err != nil {
					s.log.Warn("customer create failed, record skipped",
						zap.String("companyName", o.CompanyName), zap.Error(err))
					continue
				}
			}

			if _, err := tx.InsertOrder(ctx, o); err != nil {
				s.log.Warn("order insert failed, record skipped",
					zap.String("leadNumber", o.LeadNumber), zap.Error(err))
				continue
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
