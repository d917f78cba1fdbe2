// Package store defines the persistence contracts for users, addresses and
// posts, the errors every implementation reports, and the transaction
// helpers services use to make multi-step operations atomic.
//
// Implementations live in internal/platform/postgres. Every store exposes
// WithTx so a service can bind several stores to one *sql.Tx.
package store
