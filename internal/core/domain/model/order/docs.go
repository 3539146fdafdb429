// Package order contains the Order aggregate and its value objects: the
// lifecycle status state machine, snapshot line items, monetary totals, the
// delivery address snapshot, payment attributes and the human-readable order
// reference.
//
// The aggregate enforces the lifecycle invariants:
//   - status moves only forward along the transition table, with cancelled
//     reachable from every non-terminal state
//   - the delivery partner reference is nil until claimed, and a committed
//     claim is exclusive
//   - monetary totals always satisfy
//     grand total = subtotal + delivery fee + taxes - discount
//   - line items are immutable snapshots of the catalog at checkout time;
//     later catalog edits never alter a historical order
package order
