// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Repositories receive the database pool via constructor injection.
//
// Driver errors never leave this package: missing rows become domain
// NotFound errors and *pgconn.PgError values are wrapped in a
// *domain.StoreError that keeps the SQLSTATE code, constraint and column.
package repo
