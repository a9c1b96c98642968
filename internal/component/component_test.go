package component

import "testing"

func TestIntentClamp(t *testing.T) {
	cases := []struct {
		in, want Intent
	}{
		{Intent{0, 0}, Intent{0, 0}},
		{Intent{5, -3}, Intent{1, -1}},
		{Intent{-1, 1}, Intent{-1, 1}},
		{Intent{-100, 0}, Intent{-1, 0}},
	}
	for _, c := range cases {
		if got := c.in.Clamp(); got != c.want {
			t.Errorf("%+v.Clamp() = %+v; want %+v", c.in, got, c.want)
		}
	}
}

func TestIntentIdle(t *testing.T) {
	if !(Intent{}).Idle() {
		t.Error("zero intent should be idle")
	}
	if (Intent{Walk: 1}).Idle() || (Intent{Turn: -1}).Idle() {
		t.Error("non-zero intent reported idle")
	}
}
