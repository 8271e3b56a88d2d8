// Package config provides environment-driven configuration: Postgres DSN and
// tuned connection pools for the supported drivers, and the borrowing policy.
package config
