package revenue

import (
	"errors"
	"math"
	"testing"

	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/internal/numfmt"
)

type failingSource struct{}

func (failingSource) Samples(dashmet.Metric) ([]dashmet.Sample, error) {
	return nil, errors.New("database is on fire")
}

func TestHovers(t *testing.T) {
	d := Prepare(nil, dashmet.Revenue, 1280, 2025)
	if d.Error != nil {
		t.Fatal("unexpected error:", d.Error)
	}

	hovers := Hovers(d)
	if len(hovers) != dashmet.MonthsPerYear {
		t.Fatalf("expected %d hovers, got %d", dashmet.MonthsPerYear, len(hovers))
	}

	for i := 1; i < len(hovers); i++ {
		end := hovers[i-1].ZoneLeft + hovers[i-1].ZoneWidth
		if math.Abs(end-hovers[i].ZoneLeft) > 1e-9 {
			t.Errorf("zone %d ends at %v but zone %d starts at %v", i-1, end, i, hovers[i].ZoneLeft)
		}
	}

	if hovers[0].Flip {
		t.Error("expected first tooltip not to flip")
	}
	if !hovers[len(hovers)-1].Flip {
		t.Error("expected last tooltip to flip")
	}

	if v := hovers[0].Value; v != numfmt.Currency(102000) {
		t.Errorf("expected formatted January value, got %q", v)
	}
}

func TestHoversEmpty(t *testing.T) {
	d := Data{Format: numfmt.Number}
	if hovers := Hovers(d); hovers != nil {
		t.Errorf("expected no hovers for empty data, got %d", len(hovers))
	}
}

func TestPrepareFallback(t *testing.T) {
	d := Prepare(failingSource{}, dashmet.Orders, 320, 2025)
	if d.Error == nil {
		t.Fatal("expected error from failing source")
	}
	if d.Empty() {
		t.Fatal("expected fallback samples to be drawn")
	}
	if d.Average() == "" || d.Best() == "" || d.Lowest() == "" {
		t.Error("expected formatted summary")
	}
}
