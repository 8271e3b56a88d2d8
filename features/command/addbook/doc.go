// Package addbook implements the Add Book use case: a book enters the
// catalog with an initial number of copies and is tracked in the ledger.
// Adding a book that is already in the catalog is idempotent; re-adding a
// removed book starts it fresh.
package addbook
