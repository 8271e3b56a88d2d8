// Package approveloan implements the Approve Loan use case.
//
// Approval is the only transition that consumes inventory: a copy is
// reserved in the ledger before the LoanApproved event is appended, and the
// reservation is released again when the append fails. Approving a loan that
// is not in Requested state fails with ErrInvalidTransition; approving with
// no copy available fails with ErrOutOfStock and leaves the loan untouched.
package approveloan
