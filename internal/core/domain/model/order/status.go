package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with explicit transition functions so that illegal transitions are
// rejected at the type level rather than by scattered checks.
//
// State transitions:
//
//	Pending ──> Packaged ──> Shipped
//	   │            │
//	   └────────────┴──> Cancelled
//
// The integer values are a storage contract: they are persisted as-is and
// must never be renumbered. Because Pending is the zero value, detecting
// uninitialized orders is the job of the aggregate's constructor guard, not
// of the enum.
type Status int

const (
	// Pending is the initial status: the order is placed and its line items
	// await fulfillment by their merchants.
	Pending Status = iota

	// Packaged means every line item has been fulfilled and the order is
	// ready to hand to a carrier.
	Packaged

	// Shipped means the packaged order has left the warehouse. Terminal for
	// cancellation purposes.
	Shipped

	// Cancelled means the order was withdrawn and any fulfilled stock was
	// returned to inventory. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Packaged:  "packaged",
		Shipped:   "shipped",
		Cancelled: "cancelled",
	}
}

// Validate checks that the Status is one of the four defined values.
// Values from external sources (database, API) must pass this before use.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase status name used in API responses and
// events. It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Pack transitions the status to Packaged.
//
// Valid transitions:
//   - Pending -> Packaged
//
// Returns (0, error) from any other status. Callers that want the silent
// speculative-pack behavior check CanPack on the aggregate first.
func (s Status) Pack() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to pack", s))
	}
	return Packaged, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Packaged -> Shipped
func (s Status) Ship() (Status, error) {
	if s != Packaged {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to ship", s))
	}
	return Shipped, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Packaged -> Cancelled
//
// Shipped orders cannot be cancelled; neither can orders that are already
// cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Packaged {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}

// SortPriority returns the fixed display ordering key used by merchant and
// admin dashboards: orders nearest completion surface first, newly placed
// orders next, shipped after, cancelled last. This is a presentation order
// and is deliberately different from the storage values.
func (s Status) SortPriority() int {
	switch s {
	case Packaged:
		return 0
	case Pending:
		return 1
	case Shipped:
		return 2
	case Cancelled:
		return 3
	default:
		return 4
	}
}
