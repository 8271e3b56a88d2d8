// Package userloanhistory implements the User Loan History report: every loan
// a user ever requested, in request order, with its current lifecycle state
// and any fine assessed at return.
package userloanhistory
