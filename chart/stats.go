package chart

import "git.unix.lgbt/diamondburned/dashmet"

// Summary holds the figures shown in the chips under the chart.
type Summary struct {
	Best    dashmet.Sample `json:"best"`
	Lowest  dashmet.Sample `json:"lowest"`
	Average float64        `json:"average"`
}

// Summarize finds the best and lowest samples and the rounded mean. On ties the
// earliest sample wins.
func Summarize(samples []dashmet.Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	summary := Summary{
		Best:   samples[0],
		Lowest: samples[0],
	}

	var sum float64
	for _, s := range samples {
		if s.Value > summary.Best.Value {
			summary.Best = s
		}
		if s.Value < summary.Lowest.Value {
			summary.Lowest = s
		}
		sum += s.Value
	}

	summary.Average = dashmet.Round(sum / float64(len(samples)))
	return summary
}
