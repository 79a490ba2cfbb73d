// Package calculator implements the pure balance math for shared-expense
// groups. It has no knowledge of storage or transport.
package calculator

// MemberBalance represents one member's net position within a group.
// Positive balance = the member is owed money, negative = the member owes.
type MemberBalance struct {
	MemberID   string  `json:"member_id"`
	Name       string  `json:"name,omitempty"`
	AmountPaid float64 `json:"amount_paid"`
	Balance    float64 `json:"balance"`
}

// Summary holds the equal-split breakdown for a group.
type Summary struct {
	Total   float64         `json:"total"`
	Share   float64         `json:"share"`
	Details []MemberBalance `json:"details"`
}

// EqualSplit computes each member's net position under an equal-split policy.
// Total is the sum of everything paid, share is total divided by the member
// count, and each balance is amountPaid - share. The balances of all members
// sum to zero (within floating-point tolerance) by construction.
//
// It is a pure function of the inputs and is recomputed on every read.
func EqualSplit(memberIDs []string, paid map[string]float64) Summary {
	var total float64
	for _, amount := range paid {
		total += amount
	}

	var share float64
	if len(memberIDs) > 0 {
		share = total / float64(len(memberIDs))
	}

	details := make([]MemberBalance, 0, len(memberIDs))
	for _, id := range memberIDs {
		amountPaid := paid[id]
		details = append(details, MemberBalance{
			MemberID:   id,
			AmountPaid: amountPaid,
			Balance:    amountPaid - share,
		})
	}

	return Summary{Total: total, Share: share, Details: details}
}
