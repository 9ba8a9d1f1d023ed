// Package item provides the Item aggregate: a merchant's catalog listing
// with its price and inventory ledger.
//
// Key business rules:
//   - Inventory is mutated only through the fulfillment and cancellation
//     paths, never directly by callers
//   - Decrements fail when they would take stock negative
//   - Increments are unbounded (cancellation restores previously
//     fulfilled quantity)
//   - Price changes never propagate to line items created earlier
package item
