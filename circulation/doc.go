// Package circulation wires the lending engine together: the durable loan
// journal, the in-memory availability ledger, the lending policy and the
// notification sink, exposed behind one Engine facade.
//
// The journal is the source of truth; the ledger is an availability cache
// rebuilt from history at startup and kept in step by the command handlers.
// Engine methods delegate to the feature slices under features/command and
// features/query.
package circulation
