// Package order provides the Order aggregate and its fulfillment state
// machine.
//
// The package includes:
//   - Order: the aggregate root owning line items, the shipping destination
//     and all status transitions
//   - LineItem: a child entity binding one catalog item, a quantity and an
//     immutable unit price snapshot to its fulfillment state
//   - Status: a tagged enum with explicit transition functions
//     (pending → packaged → shipped, with cancellation from pending and
//     packaged) and the fixed dashboard sort priority
//   - ShippingAddress: a value object requiring all five shipping fields
//
// Key business rules:
//   - An order is packaged only when every line item is fulfilled
//   - Fulfilling a line item decrements the referenced item's inventory by
//     exactly the line quantity; double fulfillment is rejected
//   - Cancellation restores all fulfilled quantities and resets line items
//     as an all-or-nothing operation
//   - Shipped and cancelled are terminal for cancellation purposes
package order
