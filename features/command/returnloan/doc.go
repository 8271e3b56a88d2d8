// Package returnloan implements the Return Loan use case.
//
// Returning closes an issued or overdue loan: the fine is computed from the
// due date and the return time (calendar days late, truncated), the
// LoanReturned event is appended, and the copy goes back into the ledger.
// Returning a requested or already-returned loan fails with
// ErrInvalidTransition.
package returnloan
