package leave

import "testing"

func TestBalanceRemaining(t *testing.T) {
	cases := []struct {
		balance Balance
		want    float64
	}{
		{Balance{Type: TypeAnnual, Entitled: 22, Taken: 5.5, Pending: 2}, 16.5},
		{Balance{Type: TypeSick, Entitled: 15, Taken: 0}, 15},
		{Balance{Type: TypePersonal, Entitled: 3, Taken: 3}, 0},
	}
	for _, tc := range cases {
		if got := tc.balance.Remaining(); got != tc.want {
			t.Errorf("Remaining() for %s = %v, want %v", tc.balance.Type, got, tc.want)
		}
	}
}
