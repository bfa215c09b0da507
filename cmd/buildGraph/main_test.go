package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestFormatNs(t *testing.T) {
	assert.Equal(t, "500ns", formatNs(500))
	assert.Equal(t, "1.5µs", formatNs(1500))
	assert.Equal(t, "2.0ms", formatNs(2e6))
	assert.Equal(t, "3.00s", formatNs(3e9))
}

func TestCategoryTicks(t *testing.T) {
	ct := categoryTicks{positions: []float64{0, 1, 2}, labels: []string{"4", "20", "100"}}

	ticks := ct.Ticks(0.5, 2)
	require.Len(t, ticks, 2)
	assert.Equal(t, "20", ticks[0].Label)
	assert.Equal(t, "100", ticks[1].Label)
}

func TestDenseNsTicksClampsMin(t *testing.T) {
	ticks := denseNsTicks(0, 1000)
	require.NotEmpty(t, ticks)
	assert.Positive(t, ticks[0].Value)
}

func TestBuildPlotSaves(t *testing.T) {
	implMap := map[string]map[float64][]float64{
		"LinkedQueue (mutex)": {4: {100, 120, 110}, 20: {300, 310}},
		"Deque (mutex)":       {4: {90}, 20: {250}},
	}

	p, err := buildPlot(2, implMap)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "graph.png")
	require.NoError(t, p.Save(4*vg.Inch, 3*vg.Inch, out))
	assert.FileExists(t, out)
}
