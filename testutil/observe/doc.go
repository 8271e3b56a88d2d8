// Package observe provides observability test doubles: spies implementing the
// journal's Logger and MetricsCollector interfaces that capture calls for
// inspection in tests.
package observe
