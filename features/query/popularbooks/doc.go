// Package popularbooks implements the Popular Books report: how often each
// catalog book has been borrowed, most borrowed first.
//
// A borrow is counted when a loan is approved; requests that were rejected or
// are still pending do not count. Returned loans keep their count, so the
// report reflects all-time popularity, not current circulation.
package popularbooks
