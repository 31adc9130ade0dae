package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Role identifies the kind of user requesting an order status transition.
// It is a closed enumeration mirroring the staff roles of the business.
//
// The role passed to the workflow functions must always be the role of the
// actual authenticated requester, never a client-supplied claim. There is no
// privileged default: RoleUnknown grants no transitions at all, so a request
// arriving without a recognized role is rejected rather than silently treated
// as Admin.
type Role int

const (
	// RoleUnknown represents a missing or unrecognized role.
	// It has no transition rules and therefore no permissions.
	RoleUnknown Role = iota

	// Receptionist creates orders and may only cancel pending ones.
	Receptionist

	// Operator progresses orders through the fulfillment workflow.
	Operator

	// Admin additionally settles delivered orders and payments.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		Receptionist: "Receptionist",
		Operator:     "Operator",
		Admin:        "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Receptionist: "Receptionist",
		Operator:     "Operator",
		Admin:        "Admin",
	}
}

// Validate checks if the Role value is a member of the closed role set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Returns "Unknown" for any value outside the closed set.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role arriving from untyped external input
// (request headers, session claims) into the typed enumeration.
// Returns an error for any string outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
