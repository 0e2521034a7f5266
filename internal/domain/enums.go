package domain

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}

// TransactionCategory classifies a transaction.
type TransactionCategory string

const (
	CategoryRent           TransactionCategory = "rent"
	CategoryOperatingCosts TransactionCategory = "operating_costs"
	CategoryRepair         TransactionCategory = "repair"
	CategoryLoanPayment    TransactionCategory = "loan_payment"
	CategoryTax            TransactionCategory = "tax"
	CategoryOther          TransactionCategory = "other"
)

// Valid reports whether c is one of the known transaction categories.
func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryRent, CategoryOperatingCosts, CategoryRepair, CategoryLoanPayment, CategoryTax, CategoryOther:
		return true
	}
	return false
}

// allowedForIncome reports whether an income transaction may use c.
func (c TransactionCategory) allowedForIncome() bool {
	switch c {
	case CategoryRepair, CategoryLoanPayment, CategoryOperatingCosts:
		return false
	}
	return true
}

// DocumentCategory classifies an uploaded document.
type DocumentCategory string

const (
	DocumentRentalContract     DocumentCategory = "rental_contract"
	DocumentInvoice            DocumentCategory = "invoice"
	DocumentTax                DocumentCategory = "tax"
	DocumentPropertyManagement DocumentCategory = "property_management"
	DocumentLoan               DocumentCategory = "loan"
	DocumentOther              DocumentCategory = "other"
)

// Valid reports whether c is one of the known document categories.
func (c DocumentCategory) Valid() bool {
	switch c {
	case DocumentRentalContract, DocumentInvoice, DocumentTax, DocumentPropertyManagement, DocumentLoan, DocumentOther:
		return true
	}
	return false
}

// TransactionTypes lists every transaction type, in declaration order.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeIncome, TransactionTypeExpense}
}

// TransactionCategories lists every transaction category, in declaration order.
func TransactionCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryRent, CategoryOperatingCosts, CategoryRepair, CategoryLoanPayment, CategoryTax, CategoryOther,
	}
}

// DocumentCategories lists every document category, in declaration order.
func DocumentCategories() []DocumentCategory {
	return []DocumentCategory{
		DocumentRentalContract, DocumentInvoice, DocumentTax, DocumentPropertyManagement, DocumentLoan, DocumentOther,
	}
}
