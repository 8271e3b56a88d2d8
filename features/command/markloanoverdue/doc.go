// Package markloanoverdue implements the Mark Loan Overdue use case.
//
// A pure reclassification for batch jobs: an issued loan past its due date
// is explicitly marked Overdue. No inventory effect - the copy stays out.
// Reports never depend on this event; they derive overdue-ness from the due
// date directly. Marking an already-marked loan is idempotent.
package markloanoverdue
