package value

// Trend is informational only and never affects valuation.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// ParseTrend maps unknown input to TrendStable.
func ParseTrend(s string) Trend {
	switch t := Trend(s); t {
	case TrendRising, TrendFalling:
		return t
	default:
		return TrendStable
	}
}
