package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearScaleNice(t *testing.T) {
	s := NewLinearScale(ScaleConfig{Domain: [2]float64{0, 95}, Range: [2]float64{100, 0}, Nice: true})
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.InDelta(t, 100, s.Map(0), 1e-9)
	assert.InDelta(t, 0, s.Map(100), 1e-9)
	assert.InDelta(t, 50, s.Map(50), 1e-9)

	ticks := s.Ticks()
	require.Len(t, ticks, 11)
	for i, tick := range ticks {
		assert.InDelta(t, float64(10*i), tick, 1e-9)
	}
}

func TestNiceDomain(t *testing.T) {
	for _, tc := range []struct {
		in, want [2]float64
	}{
		{[2]float64{412, 553}, [2]float64{400, 560}},
		{[2]float64{430, 523.3}, [2]float64{430, 530}},
		{[2]float64{0, 95}, [2]float64{0, 100}},
		{[2]float64{-3, 17}, [2]float64{-4, 18}},
		{[2]float64{0.43, 0.91}, [2]float64{0.4, 0.95}},
		{[2]float64{100, 1000}, [2]float64{100, 1000}},
	} {
		min, max := NiceDomain(tc.in[0], tc.in[1], DefaultTickCount)
		assert.InDelta(t, tc.want[0], min, 1e-9, "%v", tc.in)
		assert.InDelta(t, tc.want[1], max, 1e-9, "%v", tc.in)

		s := NewLinearScale(ScaleConfig{Domain: tc.in, Range: [2]float64{500, 0}, Nice: true})
		assert.InDelta(t, tc.want[0], s.Min, 1e-9, "%v", tc.in)
		assert.InDelta(t, tc.want[1], s.Max, 1e-9, "%v", tc.in)
	}
}

func TestTickIncrement(t *testing.T) {
	assert.Equal(t, 20.0, TickIncrement(400, 560, 10))
	assert.Equal(t, 50.0, TickIncrement(0, 600, 10))
	assert.Equal(t, 100.0, TickIncrement(100, 1000, 10))
	assert.Equal(t, 5.0, TickIncrement(0, 40, 10))
	assert.Equal(t, 2.0, TickIncrement(0, 30, 10))
	assert.Equal(t, -20.0, TickIncrement(0.4, 0.95, 10), "0.05 as negative inverse")
	assert.Equal(t, 0.0, TickIncrement(3, 3, 10))
	assert.Equal(t, 0.0, TickIncrement(0, 1, 0))
}

func TestTickValues(t *testing.T) {
	for _, tc := range []struct {
		min, max float64
		want     []float64
	}{
		{400, 560, []float64{400, 420, 440, 460, 480, 500, 520, 540, 560}},
		{0, 600, []float64{0, 50, 100, 150, 200, 250, 300, 350, 400, 450, 500, 550, 600}},
		{100, 1000, []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}},
		{0.4, 0.6, []float64{0.4, 0.42, 0.44, 0.46, 0.48, 0.5, 0.52, 0.54, 0.56, 0.58, 0.6}},
	} {
		got := NewLinearScale(ScaleConfig{Domain: [2]float64{tc.min, tc.max}, Range: [2]float64{0, 1}}).Ticks()
		require.Len(t, got, len(tc.want), "[%g,%g] got %v", tc.min, tc.max, got)
		for i := range got {
			assert.InDelta(t, tc.want[i], got[i], 1e-9)
		}
	}
}

func TestLinearScaleNiceStep(t *testing.T) {
	s := NewLinearScale(ScaleConfig{Domain: [2]float64{412, 553}, Range: [2]float64{0, 1}, Nice: true, NiceStep: 20})
	assert.Equal(t, 400.0, s.Min)
	assert.Equal(t, 560.0, s.Max)
}

func TestLinearScaleFixed(t *testing.T) {
	s := NewLinearScale(ScaleConfig{Domain: [2]float64{400, 560}, Range: [2]float64{450, 50}})
	assert.Equal(t, 400.0, s.Min)
	assert.Equal(t, 560.0, s.Max)
	assert.InDelta(t, 450, s.Map(400), 1e-9)
	assert.InDelta(t, 250, s.Map(480), 1e-9)
	// Values outside the domain extrapolate.
	assert.InDelta(t, 500, s.Map(380), 1e-9)
	assert.GreaterOrEqual(t, len(s.Ticks()), 2)
}

func TestLinearScaleMonotonic(t *testing.T) {
	up := NewLinearScale(ScaleConfig{Domain: [2]float64{-3, 17}, Range: [2]float64{0, 300}, Nice: true})
	down := NewLinearScale(ScaleConfig{Domain: [2]float64{-3, 17}, Range: [2]float64{300, 0}, Nice: true})
	for x := -3.0; x < 17; x += 0.5 {
		assert.Less(t, up.Map(x), up.Map(x+0.5))
		assert.Greater(t, down.Map(x), down.Map(x+0.5))
	}
}

func TestLinearScaleDegenerate(t *testing.T) {
	s := NewLinearScale(ScaleConfig{Domain: [2]float64{7, 7}, Range: [2]float64{0, 10}})
	assert.Equal(t, 6.0, s.Min)
	assert.Equal(t, 8.0, s.Max)
	assert.InDelta(t, 5, s.Map(7), 1e-9)

	r := NewLinearScale(ScaleConfig{Domain: [2]float64{10, 0}, Range: [2]float64{0, 10}})
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 10.0, r.Max)
}

func TestBandScale(t *testing.T) {
	s := NewBandScale(BandConfig{
		Domain:  []string{"a", "b", "c"},
		Range:   [2]float64{0, 120},
		Padding: 0.5,
	})
	// step = 120 / (3 - 0.5 + 2*0.5) = 120/3.5
	step := 120 / 3.5
	assert.InDelta(t, step, s.Step(), 1e-9)
	assert.InDelta(t, step/2, s.Bandwidth(), 1e-9)

	a, ok := s.Map("a")
	require.True(t, ok)
	assert.InDelta(t, step/2, a, 1e-9)
	c, _ := s.Map("c")
	assert.InDelta(t, a+2*step, c, 1e-9)
	// Symmetric outer padding.
	assert.InDelta(t, 120-(c+s.Bandwidth()), a, 1e-9)

	_, ok = s.Map("zzz")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, s.Domain())
}

func TestBandScaleNoPadding(t *testing.T) {
	s := NewBandScale(BandConfig{Domain: []string{"x", "y", "x"}, Range: [2]float64{10, 50}})
	assert.Equal(t, []string{"x", "y"}, s.Domain())
	assert.InDelta(t, 20, s.Bandwidth(), 1e-9)
	y, _ := s.Center("y")
	assert.InDelta(t, 40, y, 1e-9)
}

func TestBandScaleBandsInsideRange(t *testing.T) {
	for _, p := range []float64{0, 0.05, 0.2, 0.5, 0.9} {
		s := NewBandScale(BandConfig{
			Domain:  []string{"Instagram", "Facebook", "Twitter", "TikTok"},
			Range:   [2]float64{80, 680},
			Padding: p,
		})
		prev := math.Inf(-1)
		for _, d := range s.Domain() {
			pos, ok := s.Map(d)
			require.True(t, ok)
			assert.GreaterOrEqual(t, pos, 80-1e-9, "padding %g", p)
			assert.LessOrEqual(t, pos+s.Bandwidth(), 680+1e-9, "padding %g", p)
			assert.GreaterOrEqual(t, pos, prev-1e-9, "overlap at padding %g", p)
			prev = pos + s.Bandwidth()
		}
	}
}

func TestBandScaleInner(t *testing.T) {
	outer := NewBandScale(BandConfig{Domain: []string{"A", "B"}, Range: [2]float64{0, 600}, Padding: 0.2})
	inner := outer.Inner(BandConfig{Domain: []string{"x", "y", "z"}, Padding: 0.05})
	lo, hi := inner.Range()
	assert.Equal(t, 0.0, lo)
	assert.InDelta(t, outer.Bandwidth(), hi, 1e-9)

	z, _ := inner.Map("z")
	assert.LessOrEqual(t, z+inner.Bandwidth(), outer.Bandwidth()+1e-9)
}

func TestOrdinalColors(t *testing.T) {
	oc := NewOrdinalColors([]string{"Image", "Video", "Text"}, []string{"#1f77b4", "#ff7f0e"})
	assert.Equal(t, "#1f77b4", Hex(oc.Color("Image")))
	assert.Equal(t, "#ff7f0e", Hex(oc.Color("Video")))
	assert.Equal(t, "#1f77b4", Hex(oc.Color("Text")), "palette cycles")
	assert.Equal(t, Hex(Unknown), Hex(oc.Color("Audio")))
	assert.Equal(t, []string{"Image", "Video", "Text"}, oc.Domain(), "lookup must not extend the domain")
}
