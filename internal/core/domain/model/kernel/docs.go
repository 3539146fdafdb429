// Package kernel contains shared value objects used across the domain model:
// entity identifiers and geographic coordinates. All types here are immutable
// and must be created through their constructor functions; zero values fail
// validation.
package kernel
