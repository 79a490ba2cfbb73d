package calculator

import (
	"math"
	"math/rand"
	"testing"
)

func TestEqualSplit(t *testing.T) {
	t.Run("single_payer_three_members", func(t *testing.T) {
		members := []string{"a", "b", "c"}
		paid := map[string]float64{"a": 300}

		got := EqualSplit(members, paid)

		if got.Total != 300 {
			t.Errorf("expected total 300, got %v", got.Total)
		}
		if got.Share != 100 {
			t.Errorf("expected share 100, got %v", got.Share)
		}

		want := map[string]float64{"a": 200, "b": -100, "c": -100}
		for _, d := range got.Details {
			if d.Balance != want[d.MemberID] {
				t.Errorf("member %s: expected balance %v, got %v", d.MemberID, want[d.MemberID], d.Balance)
			}
		}
	})

	t.Run("no_members", func(t *testing.T) {
		got := EqualSplit(nil, nil)
		if got.Total != 0 || got.Share != 0 {
			t.Errorf("expected zero summary, got %+v", got)
		}
		if len(got.Details) != 0 {
			t.Errorf("expected no details, got %d", len(got.Details))
		}
	})

	t.Run("members_without_contributions_owe_their_share", func(t *testing.T) {
		got := EqualSplit([]string{"a", "b"}, map[string]float64{"a": 50, "b": 0})
		if got.Share != 25 {
			t.Errorf("expected share 25, got %v", got.Share)
		}
		if got.Details[1].Balance != -25 {
			t.Errorf("expected b to owe 25, got %v", got.Details[1].Balance)
		}
	})
}

// Balances always sum to zero, whatever the contributions look like.
func TestEqualSplitBalancesSumToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(20)
		members := make([]string, n)
		paid := make(map[string]float64, n)
		for i := range members {
			members[i] = string(rune('a' + i))
			if rng.Intn(3) > 0 {
				paid[members[i]] = math.Round(rng.Float64()*100000) / 100
			}
		}

		got := EqualSplit(members, paid)

		var sum float64
		for _, d := range got.Details {
			sum += d.Balance
		}
		if math.Abs(sum) > 1e-9 {
			t.Fatalf("trial %d: balances sum to %v, expected ~0", trial, sum)
		}
	}
}
