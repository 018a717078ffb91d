package donut

import (
	"git.unix.lgbt/diamondburned/dashmet"
	"git.unix.lgbt/diamondburned/dashmet/chart"
)

// deviceColors are cycled through by share order.
var deviceColors = []string{"#6366f1", "#10b981", "#f59e0b", "#ec4899"}

// Data is the donut template data.
type Data struct {
	Arcs   []chart.Arc
	Radius float64
}

// Devices lays out the device split as a donut.
func Devices(devices []dashmet.Device) Data {
	shares := make([]chart.Share, len(devices))
	for i, d := range devices {
		shares[i] = chart.Share{
			Name:  d.Name,
			Value: d.Percent,
			Color: deviceColors[i%len(deviceColors)],
		}
	}

	return Data{
		Arcs:   chart.Donut(shares),
		Radius: chart.DonutRadius,
	}
}
