// Package service contains the application use cases for users, addresses
// and posts. Services coordinate domain entities and the repositories defined
// in internal/store, apply transactional boundaries for check-then-write
// sequences, and return store or service sentinel errors that the API layer
// maps to HTTP status codes.
//
// Services receive their dependencies through constructor injection and never
// depend on a concrete database implementation.
package service
