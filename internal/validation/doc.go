// Package validation turns request structs into accepted values or a full
// list of rule violations. Rules are declared with go-playground/validator
// struct tags; the package adds the custom rules the API needs, maps every
// failed rule to a human-readable message and never stops at the first
// failure.
package validation
