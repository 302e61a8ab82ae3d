package renderer

import (
	"math"
	"strings"
)

var ticks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws series, oldest first, as a line of block characters
// scaled between the series' minimum and maximum. A flat series is drawn at
// the lowest level and undefined points as spaces.
func Sparkline(series []float64) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}

	var b strings.Builder
	for _, v := range series {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			b.WriteRune(' ')
		case hi == lo:
			b.WriteRune(ticks[0])
		default:
			i := int((v - lo) / (hi - lo) * float64(len(ticks)-1))
			b.WriteRune(ticks[i])
		}
	}
	return b.String()
}
