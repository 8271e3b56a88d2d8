// Package bookavailability implements the Book Availability report: for every
// catalog book, how many copies exist, how many are out on loan and how many
// are available.
//
// The projection folds availability purely from the journal history, so it is
// also used to rebuild the in-memory ledger at startup.
package bookavailability
