// Package removebook implements the Remove Book use case: a book leaves the
// catalog and is untracked from the ledger. Removal is refused while copies
// are still out on loan. Removing a book that is not in the catalog is
// idempotent.
package removebook
