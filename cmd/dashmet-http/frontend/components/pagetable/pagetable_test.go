package pagetable

import (
	"testing"

	"git.unix.lgbt/diamondburned/dashmet"
)

func TestTrendClass(t *testing.T) {
	tests := []struct {
		row   dashmet.PageRow
		class string
	}{
		{dashmet.PageRow{Trend: 12.3}, "positive"},
		{dashmet.PageRow{Trend: 4.1, Warn: true}, "warning"},
		{dashmet.PageRow{Trend: -1, Warn: true}, "negative"},
	}

	for _, test := range tests {
		if class := TrendClass(test.row); class != test.class {
			t.Errorf("%+v expected %q, got %q", test.row, test.class, class)
		}
	}
}
