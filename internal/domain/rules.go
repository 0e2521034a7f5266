package domain

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/apperr"
)

// MaxTransactionLeadDays is how far in the future a transaction may be dated.
const MaxTransactionLeadDays = 365

// DefaultMaxUploadBytes is the upload limit used when none is configured.
const DefaultMaxUploadBytes int64 = 50 * 1024 * 1024

var allowedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx", ".xls", ".xlsx", ".txt", ".md"}

var hundred = decimal.NewFromInt(100)

// AllowedExtensions lists the accepted document file extensions.
func AllowedExtensions() []string {
	out := make([]string, len(allowedExtensions))
	copy(out, allowedExtensions)
	return out
}

// Link is a referenced row reduced to what the rules look at.
type Link struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Money rounds an amount to the two decimal places stored by the database.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func CheckProperty(purchasePrice *decimal.Decimal) error {
	if purchasePrice != nil && purchasePrice.IsNegative() {
		return apperr.BusinessRule("Purchase price must not be negative").
			WithDetail("field", "purchase_price").
			WithDetail("value", purchasePrice.StringFixed(2))
	}
	return nil
}

// CreditTerms are the effective values of a credit, after merging an update into the stored row.
type CreditTerms struct {
	PropertyID     uuid.UUID
	OriginalAmount decimal.Decimal
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	StartDate      time.Time
	EndDate        *time.Time
}

// CheckCredit applies the credit rules in order. The start date bound only applies when creating.
func CheckCredit(c CreditTerms, propertyFound, creating bool, today time.Time) error {
	if !propertyFound {
		return apperr.NotFound("Property", c.PropertyID)
	}
	if !c.OriginalAmount.IsPositive() {
		return apperr.BusinessRule("Original amount must be greater than zero").
			WithDetail("field", "original_amount").
			WithDetail("value", c.OriginalAmount.StringFixed(2))
	}
	if c.InterestRate.IsNegative() || c.InterestRate.GreaterThan(hundred) {
		return apperr.BusinessRule("Interest rate must be between 0 and 100").
			WithDetail("field", "interest_rate").
			WithDetail("value", c.InterestRate.StringFixed(2))
	}
	if !c.MonthlyPayment.IsPositive() {
		return apperr.BusinessRule("Monthly payment must be greater than zero").
			WithDetail("field", "monthly_payment").
			WithDetail("value", c.MonthlyPayment.StringFixed(2))
	}
	if c.MonthlyPayment.GreaterThan(c.OriginalAmount) {
		return apperr.BusinessRule("Monthly payment must not exceed the original amount").
			WithDetail("field", "monthly_payment").
			WithDetail("limit", c.OriginalAmount.StringFixed(2)).
			WithDetail("value", c.MonthlyPayment.StringFixed(2))
	}
	if c.EndDate != nil && !Day(*c.EndDate).After(Day(c.StartDate)) {
		return apperr.BusinessRule("End date must be after start date").
			WithDetail("field", "end_date").
			WithDetail("limit", Day(c.StartDate).Format(time.DateOnly)).
			WithDetail("value", Day(*c.EndDate).Format(time.DateOnly))
	}
	if creating && Day(c.StartDate).After(Day(today)) {
		return apperr.BusinessRule("Start date must not be in the future").
			WithDetail("field", "start_date").
			WithDetail("limit", Day(today).Format(time.DateOnly)).
			WithDetail("value", Day(c.StartDate).Format(time.DateOnly))
	}
	return nil
}

// TransactionFields are the effective values of a transaction.
type TransactionFields struct {
	PropertyID uuid.UUID
	CreditID   *uuid.UUID
	Date       time.Time
	Type       TransactionType
	Category   TransactionCategory
	Amount     decimal.Decimal
}

// CheckTransaction applies the transaction rules in order. credit is the row CreditID points at,
// nil when it does not exist.
func CheckTransaction(t TransactionFields, propertyFound bool, credit *Link, today time.Time) error {
	if !propertyFound {
		return apperr.NotFound("Property", t.PropertyID)
	}
	if t.CreditID != nil {
		if credit == nil {
			return apperr.NotFound("Credit", *t.CreditID)
		}
		if credit.PropertyID != t.PropertyID {
			return apperr.BusinessRule("Credit must belong to the same property").
				WithDetail("field", "credit_id").
				WithDetail("value", credit.ID.String())
		}
		if t.Category != CategoryLoanPayment {
			return apperr.BusinessRule("Transactions linked to a credit must use the loan_payment category").
				WithDetail("field", "category").
				WithDetail("value", string(t.Category))
		}
	}
	if !t.Amount.IsPositive() {
		return apperr.BusinessRule("Amount must be greater than zero").
			WithDetail("field", "amount").
			WithDetail("value", t.Amount.StringFixed(2))
	}
	if t.Type == TransactionTypeIncome && !t.Category.allowedForIncome() {
		return apperr.BusinessRule("Income transactions cannot use category %s", string(t.Category)).
			WithDetail("field", "category").
			WithDetail("value", string(t.Category))
	}
	latest := Day(today).AddDate(0, 0, MaxTransactionLeadDays)
	if Day(t.Date).After(latest) {
		return apperr.BusinessRule("Transaction date must not be more than 365 days in the future").
			WithDetail("field", "date").
			WithDetail("limit", latest.Format(time.DateOnly)).
			WithDetail("value", Day(t.Date).Format(time.DateOnly))
	}
	return nil
}

// DocumentFields are the effective values of a document.
type DocumentFields struct {
	PropertyID    uuid.UUID
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	Category      DocumentCategory
}

// Upload describes the file part of a document upload.
type Upload struct {
	Filename string
	Size     int64
}

// CheckDocument applies the document rules in order. transaction and credit are the rows the links
// point at, nil when they do not exist. upload is nil for metadata updates.
func CheckDocument(d DocumentFields, propertyFound bool, transaction, credit *Link, upload *Upload, maxBytes int64) error {
	if !propertyFound {
		return apperr.NotFound("Property", d.PropertyID)
	}
	if d.TransactionID != nil {
		if transaction == nil {
			return apperr.NotFound("Transaction", *d.TransactionID)
		}
		if transaction.PropertyID != d.PropertyID {
			return apperr.BusinessRule("Transaction must belong to the same property").
				WithDetail("field", "transaction_id").
				WithDetail("value", transaction.ID.String())
		}
	}
	if d.CreditID != nil {
		if credit == nil {
			return apperr.NotFound("Credit", *d.CreditID)
		}
		if credit.PropertyID != d.PropertyID {
			return apperr.BusinessRule("Credit must belong to the same property").
				WithDetail("field", "credit_id").
				WithDetail("value", credit.ID.String())
		}
	}
	if d.TransactionID != nil && d.CreditID != nil {
		return apperr.BusinessRule("Document cannot be linked to both transaction and credit")
	}
	if !d.Category.Valid() {
		return apperr.BusinessRule("Invalid category: %s", string(d.Category)).
			WithDetail("field", "category").
			WithDetail("value", string(d.Category))
	}
	if upload == nil {
		return nil
	}
	return CheckUpload(*upload, maxBytes)
}

// CheckUpload validates the file name, extension and size of an upload.
func CheckUpload(u Upload, maxBytes int64) error {
	if strings.TrimSpace(u.Filename) == "" {
		return apperr.BusinessRule("No file selected").WithDetail("field", "file")
	}
	if !ExtensionAllowed(u.Filename) {
		return apperr.BusinessRule("File type not allowed").
			WithDetail("field", "file").
			WithDetail("value", filepath.Ext(u.Filename)).
			WithDetail("allowed_types", AllowedExtensions())
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if u.Size > maxBytes {
		return apperr.BusinessRule("File size exceeds maximum allowed size").
			WithDetail("field", "file").
			WithDetail("limit", maxBytes).
			WithDetail("value", u.Size)
	}
	return nil
}

// ExtensionAllowed reports whether name carries an accepted extension, ignoring case.
func ExtensionAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
