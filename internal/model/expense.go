package model

import "time"

// PaymentStatus tracks whether an expense has been paid out.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// Expense is one recorded cost against a budget category. Everything except
// PaymentStatus is immutable once recorded; PaymentStatus only moves forward
// (pending to paid through the engine, pending to overdue externally).
type Expense struct {
	ID            string
	Category      ExpenseCategory
	Description   string
	Amount        float64
	Date          time.Time
	Vendor        string
	InvoiceNumber string
	PaymentStatus PaymentStatus
	Notes         string
}

// Paid reports whether the expense counts toward spent rather than committed.
func (e Expense) Paid() bool {
	return e.PaymentStatus == PaymentPaid
}
