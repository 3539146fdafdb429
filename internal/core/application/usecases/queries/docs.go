// Package queries contains the read side of the CQRS split. Query handlers
// run raw SQL against the read connection and return plain view structs; they
// never load aggregates or mutate state.
package queries
