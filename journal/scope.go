package journal

import (
	"slices"
)

// Well-known entity key names used in event payloads. Scopes match them
// against the JSONB payload of each journal row.
const (
	BookIDKey = "BookID"
	UserIDKey = "UserID"
	LoanIDKey = "LoanID"
)

// Key is one entity-key predicate of a Scope: payload field name and expected value.
type Key struct {
	name  string
	value string
}

// K builds a Key predicate.
func K(name, value string) Key {
	return Key{name: name, value: value}
}

// Name returns the payload field this predicate matches.
func (k Key) Name() string {
	return k.name
}

// Value returns the value this predicate expects.
func (k Key) Value() string {
	return k.value
}

// Scope selects the slice of journal history relevant for one use case:
// a set of event types, optionally narrowed by entity-key predicates.
// The zero Scope matches nothing; Everything() matches all events.
//
// Scope values are immutable; AnyKeyOf and AllKeysOf return modified copies.
type Scope struct {
	eventTypes   []string
	keys         []Key
	matchAllKeys bool
	everything   bool
}

// Everything returns the scope matching every event in the journal.
func Everything() Scope {
	return Scope{everything: true}
}

// ScopeFor returns the scope matching any of the given event types.
// Empty event types are dropped; the rest are sorted and de-duplicated.
func ScopeFor(eventTypes ...string) Scope {
	types := slices.Clone(eventTypes)
	types = slices.DeleteFunc(types, func(t string) bool { return t == "" })
	slices.Sort(types)
	types = slices.Compact(types)

	return Scope{eventTypes: types}
}

// AnyKeyOf narrows the scope to events whose payload matches at least one of
// the given keys. Partial keys (empty name or value) are dropped.
func (s Scope) AnyKeyOf(keys ...Key) Scope {
	s.keys = sanitizeKeys(keys)
	s.matchAllKeys = false

	return s
}

// AllKeysOf narrows the scope to events whose payload matches every one of
// the given keys. Partial keys (empty name or value) are dropped.
func (s Scope) AllKeysOf(keys ...Key) Scope {
	s.keys = sanitizeKeys(keys)
	s.matchAllKeys = true

	return s
}

// EventTypes returns the event types this scope matches.
func (s Scope) EventTypes() []string {
	return s.eventTypes
}

// Keys returns the entity-key predicates of this scope.
func (s Scope) Keys() []Key {
	return s.keys
}

// MatchAllKeys reports whether every key predicate must match (AllKeysOf)
// instead of at least one (AnyKeyOf).
func (s Scope) MatchAllKeys() bool {
	return s.matchAllKeys
}

// MatchesEverything reports whether this scope selects the full journal.
func (s Scope) MatchesEverything() bool {
	return s.everything
}

func sanitizeKeys(keys []Key) []Key {
	sanitized := slices.Clone(keys)
	sanitized = slices.DeleteFunc(sanitized, func(k Key) bool { return k.name == "" || k.value == "" })
	slices.SortFunc(sanitized, func(a, b Key) int {
		if a.name != b.name {
			if a.name < b.name {
				return -1
			}
			return 1
		}
		if a.value < b.value {
			return -1
		}
		if a.value > b.value {
			return 1
		}
		return 0
	})
	sanitized = slices.Compact(sanitized)

	return slices.Clip(sanitized)
}
