// Package overdueloans implements the Overdue Loans report: every active loan
// whose due date has passed as of a given point in time, with the days late
// and the fine accrued so far.
//
// Overdue-ness is derived from the due date, not from the persisted loan
// status, so a loan that has not yet been reclassified by the overdue batch
// job still shows up here.
package overdueloans
