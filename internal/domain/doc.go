// Package domain contains the core business entities of the application:
// users, their single address and the posts they author. Entities are plain
// structs with constructor functions, invariant checks and merge-update
// helpers. The package knows nothing about HTTP or SQL.
package domain
