package statcard

import (
	"testing"

	"git.unix.lgbt/diamondburned/dashmet"
)

func TestValue(t *testing.T) {
	cards := dashmet.StatCards(dashmet.Filter12Mons)

	tests := []struct {
		card   dashmet.StatCard
		value  string
		change string
		trend  string
	}{
		{cards[0], "₹12.4L", "+18.3%", "positive"},
		{cards[1], "8,291", "+7.8%", "positive"},
		{cards[2], "4.32%", "+0.7%", "positive"},
		{cards[3], "92", "", ""},
	}

	for _, test := range tests {
		if v := Value(test.card); v != test.value {
			t.Errorf("%s: expected value %q, got %q", test.card.Title, test.value, v)
		}
		if c := Change(test.card); c != test.change {
			t.Errorf("%s: expected change %q, got %q", test.card.Title, test.change, c)
		}
		if tr := Trend(test.card); tr != test.trend {
			t.Errorf("%s: expected trend %q, got %q", test.card.Title, test.trend, tr)
		}
	}
}

func TestTrendNegative(t *testing.T) {
	c := -2.5
	if tr := Trend(dashmet.StatCard{Change: &c}); tr != "negative" {
		t.Errorf("expected negative, got %q", tr)
	}

	zero := 0.0
	if tr := Trend(dashmet.StatCard{Change: &zero}); tr != "neutral" {
		t.Errorf("expected neutral, got %q", tr)
	}
}
