// Package shell contains the imperative glue around the pure core: mapping
// domain events to and from their journal representation, retrying appends
// that lost an optimistic concurrency race, and reporting handler outcomes.
package shell
