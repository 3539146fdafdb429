// Package partner contains the DeliveryPartner aggregate: the courier profile
// tied 1:1 to a user account, with vehicle details, live location, earnings
// counters and the availability flags the claim workflow relies on.
//
// Earnings mutate only through CompleteDelivery and the reset operations, so
// a delivery credits the partner exactly once.
package partner
