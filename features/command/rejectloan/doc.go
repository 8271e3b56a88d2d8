// Package rejectloan implements the Reject Loan use case.
//
// Rejection discards a requested loan without any inventory effect.
// Rejecting an already-rejected loan is idempotent; any other state fails
// with ErrInvalidTransition.
package rejectloan
