// Package services contains domain services that orchestrate multiple
// aggregates: the earnings calculator and the delivery settler that closes
// out a delivery across the order and partner aggregates.
package services
