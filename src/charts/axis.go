package charts

import (
	"fmt"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds pads [min,max] by 5% of the span and snaps outward to the span's order of
// magnitude. A flat range is widened by 5% of its own magnitude, at least 1, so large
// constant readings (a steady 1e16) still get a span that survives float rounding.
func niceAxisBounds(min, max float64) (float64, float64) {
	if !isFinite(min) || !isFinite(max) {
		return min, max
	}
	if max < min {
		min, max = max, min
	}
	pad := (max - min) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(min)*0.05, 1)
	}
	lo, hi := min-pad, max+pad
	mag := math.Pow(10, math.Floor(math.Log10(hi-lo)))
	if isFinite(mag) && mag > 0 {
		lo = math.Floor(lo/mag) * mag
		hi = math.Ceil(hi/mag) * mag
	}
	return lo, hi
}

// maxTicksFactor bounds niceTicks output to maxTicksFactor*n+2 ticks.
const maxTicksFactor = 4

// niceTicks generates about n tick marks covering [min, max] using 1/2/2.5/5 steps.
// It returns nil when no positive finite step exists for the range.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || !isFinite(min) || !isFinite(max) {
		return nil
	}
	if max < min {
		min, max = max, min
	}
	if max == min {
		min, max = niceAxisBounds(min, max)
	}
	span := max - min
	if !(span > 0) || !isFinite(span) {
		return nil
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Max(math.Ceil(span/step), 2)
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	if !(bestStep > 0) || !isFinite(bestStep) {
		return nil
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	limit := maxTicksFactor*n + 2
	ticks := []chart.Tick{}
	for i := 0; i < limit; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.4g", v)
	}
}

// finiteBounds returns the min and max over all finite values, ok=false if there are none.
func finiteBounds(traces []Trace) (min, max float64, ok bool) {
	min, max = math.MaxFloat64, -math.MaxFloat64
	for _, tr := range traces {
		for _, v := range tr.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// valueTicks builds the Y ticks; go-chart derives the axis range from the tick span.
func valueTicks(traces []Trace, n int) []chart.Tick {
	lo, hi, ok := finiteBounds(traces)
	if !ok {
		lo, hi = 0, 1
	}
	nMin, nMax := niceAxisBounds(lo, hi)
	return niceTicks(nMin, nMax, n)
}

// timeStep is one row of the span -> tick spacing table. layout labels every tick; ticks
// that open a new UTC day (and the first tick) use dayLayout so the date stays readable on
// sub-day spacings.
type timeStep struct {
	upTo      time.Duration
	step      time.Duration
	layout    string
	dayLayout string
}

var timeSteps = []timeStep{
	{2 * time.Minute, 10 * time.Second, "15:04:05", "2006-01-02 15:04:05"},
	{10 * time.Minute, time.Minute, "15:04", "2006-01-02 15:04"},
	{30 * time.Minute, 5 * time.Minute, "15:04", "2006-01-02 15:04"},
	{2 * time.Hour, 10 * time.Minute, "15:04", "2006-01-02 15:04"},
	{6 * time.Hour, 30 * time.Minute, "15:04", "2006-01-02 15:04"},
	{26 * time.Hour, time.Hour, "15:04", "2006-01-02 15:04"},
	{3 * 24 * time.Hour, 6 * time.Hour, "01-02 15:04", "2006-01-02 15:04"},
	{14 * 24 * time.Hour, 24 * time.Hour, "2006-01-02", "2006-01-02"},
}

var weeklyStep = timeStep{step: 7 * 24 * time.Hour, layout: "2006-01-02", dayLayout: "2006-01-02"}

// pickTimeStep selects a readable spacing for a span; a BIO day file lands on hourly ticks.
func pickTimeStep(span time.Duration) timeStep {
	for _, ts := range timeSteps {
		if span <= ts.upTo {
			return ts
		}
	}
	return weeklyStep
}

// timeTicks returns UTC-aligned ticks from the step boundary at or before minT up to the
// first boundary at or after maxT, so the tick span always covers every sample. There are
// always at least two ticks, which keeps the X range non-zero for a single timestamp.
func timeTicks(minT, maxT time.Time) []chart.Tick {
	ts := pickTimeStep(maxT.Sub(minT))
	st := int64(ts.step / time.Second)
	s := minT.UTC().Unix()
	aligned := time.Unix((s/st)*st, 0).UTC()
	if aligned.After(minT) {
		aligned = aligned.Add(-ts.step)
	}
	ticks := []chart.Tick{}
	var prevDay int
	for t := aligned; ; t = t.Add(ts.step) {
		layout := ts.layout
		if day := t.YearDay() + 1000*t.Year(); len(ticks) == 0 || day != prevDay {
			layout = ts.dayLayout
			prevDay = day
		}
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Format(layout)})
		if !t.Before(maxT) && len(ticks) >= 2 {
			break
		}
	}
	return ticks
}

// timeBounds returns the earliest and latest timestamp.
func timeBounds(times []time.Time) (time.Time, time.Time) {
	minT, maxT := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}
	return minT, maxT
}
