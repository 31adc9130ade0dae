package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It is a closed enumeration: the set of states is fixed at compile time and
// cannot be extended at runtime. Which transitions between states are legal,
// and for whom, is defined by the role transition table in workflow.go.
//
// Lifecycle (role gating omitted):
//
//	Pending ──> InProgress ──> Executed ──> Completed ──┬──> Delivered ──┬──> Paid
//	   │             │             │                    │                │
//	   │             │             │                    └──> PendingPayment ──> Paid
//	   └─────────────┴─────────────┴──> Cancelled
//
// Cancelled and Paid are terminal: no role may transition out of them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// InProgress indicates work on the order has started.
	InProgress

	// Executed indicates the requested service has been performed.
	Executed

	// Completed indicates the order passed final checks and is ready to hand over.
	Completed

	// Cancelled is a terminal status for orders abandoned at any point
	// before completion.
	Cancelled

	// Delivered indicates the order result has been handed to the customer.
	Delivered

	// PendingPayment indicates delivery happened but payment is outstanding.
	PendingPayment

	// Paid is the terminal status of a successfully settled order.
	Paid
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		InProgress:     "InProgress",
		Executed:       "Executed",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
		Delivered:      "Delivered",
		PendingPayment: "PendingPayment",
		Paid:           "Paid",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		InProgress:     "InProgress",
		Executed:       "Executed",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
		Delivered:      "Delivered",
		PendingPayment: "PendingPayment",
		Paid:           "Paid",
	}
}

// Validate checks if the Status value is a member of the closed status set.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for any value outside the closed set.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status arriving from untyped external input
// (HTTP body, database column) into the typed enumeration.
// Returns an error for any string outside the closed set, including "Unknown" —
// external input may never name the invalid placeholder value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
