package donut

import (
	"testing"

	"git.unix.lgbt/diamondburned/dashmet"
)

func TestDevices(t *testing.T) {
	d := Devices(dashmet.DeviceSplit())
	if len(d.Arcs) != 3 {
		t.Fatalf("expected 3 arcs, got %d", len(d.Arcs))
	}

	for i, arc := range d.Arcs {
		if arc.Color != deviceColors[i] {
			t.Errorf("arc %d expected color %s, got %s", i, deviceColors[i], arc.Color)
		}
	}

	if d.Arcs[0].Name != "Desktop" || d.Arcs[0].Dash != 54 {
		t.Errorf("unexpected first arc %+v", d.Arcs[0])
	}
}

func TestDevicesEmpty(t *testing.T) {
	if d := Devices(nil); d.Arcs != nil {
		t.Errorf("expected no arcs, got %v", d.Arcs)
	}
}
