package mocks

import (
	"context"

	"github.com/userhub/userhub-api/internal/store"
)

// Transactor is a store.Transactor that runs the unit of work without a
// database. The function receives a nil *sql.Tx, which the store mocks
// ignore in WithTx.
type Transactor struct {
	// BeginErr, when set, is returned without running the function.
	BeginErr error
	// Calls counts RunInTransaction invocations.
	Calls int
}

var _ store.Transactor = (*Transactor)(nil)

// RunInTransaction implements store.Transactor.
func (m *Transactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(ctx, nil)
}
