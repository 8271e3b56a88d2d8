// Package requestloan implements the Request Loan use case.
//
// A user asks to borrow a book. The request is refused when the book is not
// in the catalog or the user already holds the maximum number of active
// loans; otherwise the loan is created in Requested state. No copy is
// reserved at this point - that happens on approval.
//
// Repeating an identical request (same loan id, book and user) is idempotent.
package requestloan
