// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root together with the
// role-gated workflow that governs order status transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A closed enumeration of the eight workflow states
//   - Role: A closed enumeration of the staff roles allowed to move orders
//   - The workflow functions IsValidStatus, AllowedNextStates and CanTransition,
//     backed by a static role/state transition table
//
// Key business rules:
//   - Every order starts in Pending; Cancelled and Paid are terminal
//   - A transition is legal only if the requester's role lists it in the table
//   - Unknown roles and unknown statuses never gain permissions: the workflow
//     functions return definite values (false or an empty slice) for any input
//     and never panic or error
//   - External strings (HTTP, database) enter the typed core only through
//     StatusFromString and RoleFromString
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
