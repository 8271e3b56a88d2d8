// Package journal defines the storage contract for the lending engine's event
// journal: immutable domain event records, the Scope type used to select the
// slice of history a command or report cares about, and the observability
// interfaces storage engines accept.
//
// The journal is append-only. Every accepted workflow transition is recorded
// as exactly one event; appends are guarded by optimistic concurrency on the
// scope that was read before the decision was made. Engine implementations
// live in subpackages (see journal/postgresengine).
package journal
