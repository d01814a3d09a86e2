// Package postgres provides PostgreSQL implementations of the store
// interfaces, backed by database/sql over the pgx stdlib driver.
//
// Each store accepts a store.DBTX so it can run against either a pooled
// connection or a transaction, maps sql.ErrNoRows onto the store's
// entity-specific not-found sentinels, and translates PostgreSQL
// constraint violations (unique, foreign key) into store.ErrDuplicate and
// store.ErrInvalidEntity wrappers.
package postgres
