package order

// The role-gated transition table. Rows are source states, values are the
// destinations reachable by that role, in declaration order. Declaration order
// is significant for presentation (the UI offers destinations in this order)
// but not for authorization: any listed destination is equally legal.
//
// | From \ Role    | Receptionist | Operator                  | Admin                     |
// |----------------|--------------|---------------------------|---------------------------|
// | Pending        | Cancelled    | InProgress, Cancelled     | InProgress, Cancelled     |
// | InProgress     | —            | Executed, Cancelled       | Executed, Cancelled       |
// | Executed       | —            | Completed, Cancelled      | Completed, Cancelled      |
// | Completed      | —            | Delivered, PendingPayment | Delivered, PendingPayment |
// | Delivered      | —            | —                         | PendingPayment, Paid      |
// | PendingPayment | —            | —                         | Paid                      |
// | Cancelled      | —            | —                         | —                         |
// | Paid           | —            | —                         | —                         |
//
// The three role maps are independent; Admin covering everything Operator can
// do is asserted by a test, not derived structurally.
func getRoleTransitions() map[Role]map[Status][]Status {
	return map[Role]map[Status][]Status{
		Receptionist: {
			Pending: {Cancelled},
		},
		Operator: {
			Pending:    {InProgress, Cancelled},
			InProgress: {Executed, Cancelled},
			Executed:   {Completed, Cancelled},
			Completed:  {Delivered, PendingPayment},
		},
		Admin: {
			Pending:        {InProgress, Cancelled},
			InProgress:     {Executed, Cancelled},
			Executed:       {Completed, Cancelled},
			Completed:      {Delivered, PendingPayment},
			Delivered:      {PendingPayment, Paid},
			PendingPayment: {Paid},
		},
	}
}

// IsValidStatus reports whether s is a member of the closed status set.
// Used as a guard before any transition lookup so malformed values are never
// treated as reachable states or as valid sources.
func IsValidStatus(s Status) bool {
	return s.Validate() == nil
}

// AllowedNextStates returns the destinations reachable by role from the given
// source status, in declaration order. An empty slice means "no legal move":
// unknown roles, unknown sources and terminal states all yield an empty result
// rather than an error.
func AllowedNextStates(role Role, from Status) []Status {
	allowed := getRoleTransitions()[role][from]
	return append([]Status(nil), allowed...)
}

// CanTransition reports whether role may move an order from one status to
// another. It is the single authorization gate every status-change request
// passes through, and must be called with the role of the actual requester.
//
// Returns false, never an error, for any malformed input: unknown statuses are
// rejected before the table lookup, unknown roles have no rules.
func CanTransition(role Role, from, to Status) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	for _, allowed := range getRoleTransitions()[role][from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no role can transition out of s.
// Derived from the table rather than hardcoded so it cannot drift from it.
func IsTerminalStatus(s Status) bool {
	if !IsValidStatus(s) {
		return false
	}
	for _, rules := range getRoleTransitions() {
		if len(rules[s]) > 0 {
			return false
		}
	}
	return true
}
