package query

import "testing"

func TestLimitOrDefault(t *testing.T) {
	limit := 10
	cases := []struct {
		name string
		p    *Pagination
		want int
	}{
		{"nil pagination", nil, 50},
		{"nil limit", &Pagination{}, 50},
		{"zero limit", &Pagination{Limit: new(int)}, 50},
		{"explicit limit", &Pagination{Limit: &limit}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.LimitOrDefault(50); got != tc.want {
				t.Errorf("LimitOrDefault() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestOffsetOrZero(t *testing.T) {
	offset := 20
	negative := -5
	if got := (*Pagination)(nil).OffsetOrZero(); got != 0 {
		t.Errorf("OffsetOrZero() = %d, want 0", got)
	}
	if got := (&Pagination{Offset: &negative}).OffsetOrZero(); got != 0 {
		t.Errorf("OffsetOrZero() = %d, want 0", got)
	}
	if got := (&Pagination{Offset: &offset}).OffsetOrZero(); got != 20 {
		t.Errorf("OffsetOrZero() = %d, want 20", got)
	}
}
