package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/i5heu/GoStateHooks/internal/report"
)

// statsPoints implements XYer and YErrorer over report.Stats, with X replaced
// by a category position.
type statsPoints struct {
	xs    []float64
	stats []report.Stats
}

func (s statsPoints) Len() int                { return len(s.stats) }
func (s statsPoints) XY(i int) (x, y float64) { return s.xs[i], s.stats[i].Median }
func (s statsPoints) YError(i int) (low, high float64) {
	return s.stats[i].Median - s.stats[i].Min, s.stats[i].Max - s.stats[i].Median
}

// categoryTicks implements a categorical X-axis: 0,1,2,... => concurrency labels.
type categoryTicks struct {
	positions []float64
	labels    []string
}

func (ct categoryTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, pos := range ct.positions {
		if pos >= min && pos <= max {
			ticks = append(ticks, plot.Tick{Value: pos, Label: ct.labels[i]})
		}
	}
	return ticks
}

// denseNsTicks spreads about one labelled tick every 30px over a log range.
func denseNsTicks(min, max float64) []plot.Tick {
	const pxHeight = 648.0
	const pxSpacing = 30.0
	nTicks := pxHeight / pxSpacing

	if min <= 0 {
		min = 1e-9
	}
	start := math.Log10(min)
	step := (math.Log10(max) - start) / nTicks

	var ticks []plot.Tick
	for i := 0.0; i <= nTicks; i++ {
		y := math.Pow(10, start+i*step)
		ticks = append(ticks, plot.Tick{Value: y, Label: formatNs(y)})
	}
	return ticks
}

func main() {
	jsonFile := flag.String("jsonfile", "test-results.json", "Path to JSON file containing test sessions")
	outputPrefix := flag.String("out", "benchmark_graph", "Output graph image filename prefix")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{Name: "buildGraph"})

	sessions, err := report.Load(*jsonFile)
	if err != nil {
		logger.Error("cannot load report", "error", err)
		os.Exit(1)
	}

	for cpus, implMap := range report.CollectSamples(sessions) {
		p, err := buildPlot(cpus, implMap)
		if err != nil {
			logger.Error("cannot build plot", "cpus", cpus, "error", err)
			continue
		}
		filename := fmt.Sprintf("%s_%d.png", *outputPrefix, cpus)
		if err := p.Save(12*vg.Inch, 9*vg.Inch, filename); err != nil {
			logger.Error("cannot save plot", "cpus", cpus, "error", err)
			continue
		}
		logger.Info("graph saved", "cpus", cpus, "file", filename)
	}
}

// buildPlot draws median ns/msg with 5% min/max error bars for every
// implementation measured at one CPU count.
func buildPlot(cpus int, implMap map[string]map[float64][]float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Benchmark (5%%-avg-min / Median / 5%%-avg-max) vs. Concurrency for %d CPU(s)", cpus)
	p.X.Label.Text = "NumProducers + NumConsumers"
	p.Y.Label.Text = "Time per Msg (ns)"
	applyDarkTheme(p)
	p.Y.Tick.Marker = plot.TickerFunc(denseNsTicks)
	p.Add(plotter.NewGrid())

	// Union of concurrency values, mapped onto category positions.
	concurrencySet := make(map[float64]struct{})
	for _, implData := range implMap {
		for conc := range implData {
			concurrencySet[conc] = struct{}{}
		}
	}
	concValues := make([]float64, 0, len(concurrencySet))
	for val := range concurrencySet {
		concValues = append(concValues, val)
	}
	sort.Float64s(concValues)

	concMapping := make(map[float64]float64, len(concValues))
	ticks := categoryTicks{}
	for i, val := range concValues {
		concMapping[val] = float64(i)
		ticks.positions = append(ticks.positions, float64(i))
		ticks.labels = append(ticks.labels, strconv.FormatFloat(val, 'f', -1, 64))
	}
	p.X.Tick.Marker = ticks

	implNames := make([]string, 0, len(implMap))
	for implName := range implMap {
		implNames = append(implNames, implName)
	}
	sort.Strings(implNames)

	colors := plotutil.SoftColors
	shapes := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.CrossGlyph{},
		draw.PlusGlyph{},
	}

	// Offset each implementation slightly so error bars do not overlap.
	const offsetRange = 0.4
	offsetStep := offsetRange / float64(max(len(implNames), 1))
	startOffset := -offsetRange/2 + offsetStep/2

	for i, impl := range implNames {
		stats := report.BuildStats(implMap[impl])
		if len(stats) == 0 {
			continue
		}
		sp := statsPoints{stats: stats, xs: make([]float64, len(stats))}
		for j, s := range stats {
			sp.xs[j] = concMapping[s.Concurrency] + startOffset + float64(i)*offsetStep
		}
		c := colors[i%len(colors)]

		line, err := plotter.NewLine(sp)
		if err != nil {
			return nil, fmt.Errorf("line for %s: %w", impl, err)
		}
		line.Color = c

		points, err := plotter.NewScatter(sp)
		if err != nil {
			return nil, fmt.Errorf("scatter for %s: %w", impl, err)
		}
		points.GlyphStyle.Radius = vg.Points(5)
		points.Color = c
		points.Shape = shapes[i%len(shapes)]

		yErrBars, err := plotter.NewYErrorBars(sp)
		if err != nil {
			return nil, fmt.Errorf("error bars for %s: %w", impl, err)
		}
		yErrBars.Color = c

		p.Add(line, points, yErrBars)
		p.Legend.Add(impl, line, points)
	}
	return p, nil
}

func applyDarkTheme(p *plot.Plot) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p.BackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	p.Title.TextStyle.Color = white
	p.X.Label.TextStyle.Color = white
	p.Y.Label.TextStyle.Color = white
	p.X.Color = white
	p.Y.Color = white
	p.X.Tick.Label.Color = white
	p.Y.Tick.Label.Color = white
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Color = white
}

// formatNs nicely formats a nanoseconds value in ns, µs, ms, or s.
func formatNs(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.0fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.1fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.1fms", ns/1e6)
	default:
		return fmt.Sprintf("%.2fs", ns/1e9)
	}
}
