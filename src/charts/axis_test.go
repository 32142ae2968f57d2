package charts

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
)

func TestNiceAxisBoundsDegenerate(t *testing.T) {
	lo, hi := niceAxisBounds(10, 10)
	assert.Less(t, lo, 10.0)
	assert.Greater(t, hi, 10.0)
}

func TestNiceTicksCoverRange(t *testing.T) {
	for _, tc := range []struct{ min, max float64 }{
		{-42.5, 17.25},
		{0, 1},
		{48000, 48350},
		{-0.0031, 0.0043},
	} {
		ticks := niceTicks(tc.min, tc.max, 8)
		require.GreaterOrEqual(t, len(ticks), 2, "%v", tc)
		assert.LessOrEqual(t, ticks[0].Value, tc.min, "%v", tc)
		assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, tc.max, "%v", tc)
		for i := 1; i < len(ticks); i++ {
			assert.Greater(t, ticks[i].Value, ticks[i-1].Value)
		}
	}
	assert.Nil(t, niceTicks(math.NaN(), 1, 6))
}

func TestValueTicksIgnoreNonFinite(t *testing.T) {
	trs := []Trace{
		{Label: "a", Values: []float64{math.NaN(), 5, math.Inf(1)}},
		{Label: "b", Values: []float64{-3, math.Inf(-1)}},
	}
	lo, hi, ok := finiteBounds(trs)
	require.True(t, ok)
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 5.0, hi)

	ticks := valueTicks(trs, 6)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, ticks[0].Value, -3.0)
	assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 5.0)

	ticks = valueTicks([]Trace{{Values: []float64{math.NaN()}}}, 6)
	require.GreaterOrEqual(t, len(ticks), 2)
}

func TestTimeTicksSpanDay(t *testing.T) {
	minT := time.Date(2006, 5, 14, 0, 0, 7, 0, time.UTC)
	maxT := time.Date(2006, 5, 14, 23, 59, 59, 0, time.UTC)
	ticks := timeTicks(minT, maxT)
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.LessOrEqual(t, ticks[0].Value, chart.TimeToFloat64(minT))
	assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, chart.TimeToFloat64(maxT))
	require.Len(t, ticks, 25)
	assert.Equal(t, "2006-05-14 00:00", ticks[0].Label)
	assert.Equal(t, "01:00", ticks[1].Label)
	assert.Equal(t, "23:00", ticks[23].Label)
	assert.Equal(t, "2006-05-15 00:00", ticks[24].Label)
}

func TestTimeTicksSingleTimestamp(t *testing.T) {
	ts := time.Date(2006, 5, 14, 12, 0, 0, 0, time.UTC)
	ticks := timeTicks(ts, ts)
	require.Len(t, ticks, 2)
	assert.Less(t, ticks[0].Value, ticks[1].Value)
	assert.Equal(t, "2006-05-14 12:00:00", ticks[0].Label)
	assert.Equal(t, "12:00:10", ticks[1].Label)
}

func TestPickTimeStep(t *testing.T) {
	assert.Equal(t, 10*time.Second, pickTimeStep(90*time.Second).step)
	day := pickTimeStep(24 * time.Hour)
	assert.Equal(t, time.Hour, day.step)
	assert.Equal(t, "15:04", day.layout)
	assert.Equal(t, 6*time.Hour, pickTimeStep(2*24*time.Hour).step)
	assert.Equal(t, 7*24*time.Hour, pickTimeStep(30*24*time.Hour).step)
}

func TestNiceAxisBoundsLargeConstant(t *testing.T) {
	lo, hi := niceAxisBounds(1e16, 1e16)
	assert.Less(t, lo, 1e16)
	assert.Greater(t, hi, 1e16)

	lo, hi = niceAxisBounds(-250, -250)
	assert.Less(t, lo, -250.0)
	assert.Greater(t, hi, -250.0)
}

func TestNiceTicksBoundedForDegenerateInput(t *testing.T) {
	for _, v := range []float64{1e16, -1e300, 0, 48123.5} {
		ticks := niceTicks(v, v, 6)
		require.GreaterOrEqual(t, len(ticks), 2, "%v", v)
		assert.LessOrEqual(t, len(ticks), maxTicksFactor*6+2, "%v", v)
		assert.LessOrEqual(t, ticks[0].Value, v, "%v", v)
		assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, v, "%v", v)
	}
	assert.Nil(t, niceTicks(0, math.Inf(1), 6))
	assert.Nil(t, niceTicks(-math.MaxFloat64, math.MaxFloat64, 6))
}

func TestValueTicksLargeConstantTrace(t *testing.T) {
	ticks := valueTicks([]Trace{{Values: []float64{1e16, 1e16}}}, 12)
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.LessOrEqual(t, len(ticks), maxTicksFactor*12+2)
}
