// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles query execution, constraint-violation mapping and data mapping
// between domain entities and database records, and embeds the goose
// migrations that create the schema.
package postgres
