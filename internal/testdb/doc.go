// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests obtain a migrated connection with GetTestDBWithT, which skips the
// test when no database URL is configured, and isolate themselves with
// WithTx so every change is rolled back:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		users := postgres.NewPostgresUserStore(tx, nil)
//		...
//	})
//
// Integration tests carry the "integration" build tag and run with
//
//	USERHUB_TEST_DATABASE_URL=postgres://... go test -tags=integration ./...
package testdb
