// Package issuedloans implements the Issued Loans report: every loan
// currently holding a copy (issued or overdue), in issue order.
//
// This is a read-only operation that projects the current state from the
// journal history without modifying any data or generating new events.
package issuedloans
