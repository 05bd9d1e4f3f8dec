package models

import (
	"math"
	"testing"
)

func TestCoerceCount(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{float64(3), 3},
		{float64(2.9), 2},
		{float64(-1), -1},
		{"4", 4},
		{" 5 ", 5},
		{"2.5", 2},
		{"abc", 0},
		{"", 0},
		{nil, 0},
		{true, 1},
		{[]int{1}, 0},
		{float64(1e300), math.MaxInt},
		{"1e300", math.MaxInt},
		{float64(-1e300), math.MinInt},
		{"-1e300", math.MinInt},
		{7, 7},
	}

	for _, c := range cases {
		if got := CoerceCount(c.in); got != c.want {
			t.Errorf("CoerceCount(%#v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRequestStatus(t *testing.T) {
	if !StatusPending.Valid() || !StatusApproved.Valid() || !StatusRejected.Valid() {
		t.Errorf("Expected known statuses to be valid")
	}
	if RequestStatus("done").Valid() {
		t.Errorf("Expected unknown status to be invalid")
	}
	if StatusPending.Decision() {
		t.Errorf("Expected pending not to be a reviewer decision")
	}
	if !StatusRejected.Decision() {
		t.Errorf("Expected rejected to be a reviewer decision")
	}
}
