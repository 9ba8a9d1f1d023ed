// Package services provides domain services that implement business logic
// spanning multiple aggregates of the marketplace.
//
// The package includes:
//   - OrderSorter: A domain service producing the fixed dashboard ordering
//     of orders by fulfillment status
package services
