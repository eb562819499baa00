package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/programme-lv/seqbench/internal/sweep"
)

func (g *Generator) writePerformanceComparison(path string, in Inputs) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Performance Comparison: DNA Pattern Matching Algorithms",
			Subtitle: fmt.Sprintf("Varying text size, pattern length = %d bp", in.FixedPatternLen),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Text Size (base pairs)", Type: "log"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Execution Time (ms)", Type: "log"}),
	)

	for _, algo := range in.Catalog {
		s, ok := in.SizeSeries[algo.ID]
		if !ok {
			continue
		}
		data := lineData(s)
		if len(data) == 0 {
			continue
		}
		line.AddSeries(
			fmt.Sprintf("%s - %s", algo.Name, algo.Complexity),
			data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: algo.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: algo.Color}),
		)
	}
	return renderToFile(path, line)
}

func (g *Generator) writePatternLengthImpact(path string, in Inputs) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Impact of Pattern Length on Algorithm Performance",
			Subtitle: fmt.Sprintf("Text size = %d bp", in.FixedTextSize),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Pattern Length (base pairs)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Execution Time (ms)", Type: "value"}),
	)

	for _, algo := range in.Catalog {
		s, ok := in.PatternSeries[algo.ID]
		if !ok {
			continue
		}
		data := lineData(s)
		if len(data) == 0 {
			continue
		}
		line.AddSeries(algo.Name, data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: algo.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: algo.Color}),
		)
	}
	return renderToFile(path, line)
}

func (g *Generator) writeMemoryUsage(path string, in Inputs) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Theoretical Memory Usage Comparison",
			Subtitle: fmt.Sprintf("Text: %d bp, pattern: %d bp",
				in.FixedTextSize, in.FixedPatternLen),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Memory Usage (KB)"}),
	)

	names := make([]string, 0, len(in.Catalog))
	data := make([]opts.BarData, 0, len(in.Catalog))
	for _, algo := range in.Catalog {
		names = append(names, algo.Name)
		kb := float64(algo.MemoryBytes(in.FixedTextSize, in.FixedPatternLen)) / 1024.0
		data = append(data, opts.BarData{
			Value:     kb,
			ItemStyle: &opts.ItemStyle{Color: algo.Color},
		})
	}
	bar.SetXAxis(names).AddSeries("Memory (KB)", data)
	return renderToFile(path, bar)
}

func (g *Generator) writeSpeedupComparison(path string, in Inputs) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Algorithm Speedup Comparison",
			Subtitle: fmt.Sprintf("Speedup = %s time / algorithm time", in.Baseline.Name),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Text Size (base pairs)", Type: "log"}),
		charts.WithYAxisOpts(opts.YAxis{Name: fmt.Sprintf("Speedup Factor (relative to %s)", in.Baseline.Name)}),
	)

	first := true
	for _, algo := range in.Catalog {
		if algo.ID == in.Baseline.ID {
			continue
		}
		points := in.Speedups[algo.ID]
		if len(points) == 0 {
			continue
		}
		data := make([]opts.LineData, 0, len(points))
		for _, p := range points {
			data = append(data, opts.LineData{Value: []interface{}{p.X, p.Ratio}})
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineStyleOpts(opts.LineStyle{Color: algo.Color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: algo.Color}),
		}
		if first {
			// reference line at ratio 1.0: anything below it is slower
			// than the baseline
			seriesOpts = append(seriesOpts,
				charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
					Name:  fmt.Sprintf("Baseline (%s)", in.Baseline.Name),
					YAxis: 1.0,
				}),
			)
			first = false
		}
		line.AddSeries(algo.Name, data, seriesOpts...)
	}
	return renderToFile(path, line)
}

func (g *Generator) writeComplexityVerification(path string, in Inputs) error {
	page := components.NewPage()
	page.PageTitle = "Theoretical Complexity Verification"

	for _, algo := range in.Catalog {
		s, ok := in.SizeSeries[algo.ID]
		if !ok {
			continue
		}
		xs, times := s.Valid()
		if len(xs) == 0 {
			continue
		}

		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("%s - %s", algo.Name, algo.Complexity),
				Subtitle: fitSubtitle(in, algo.ID),
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
			charts.WithXAxisOpts(opts.XAxis{Name: "Text Size (bp)", Type: "log"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "Time (ms)", Type: "log"}),
		)

		measured := make([]opts.ScatterData, 0, len(xs))
		for i := range xs {
			measured = append(measured, opts.ScatterData{
				Value: []interface{}{xs[i], times[i]},
			})
		}
		scatter.AddSeries("Measured", measured,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: algo.Color}))

		if fit, ok := in.Fits[algo.ID]; ok {
			fitted := make([]opts.LineData, 0, len(xs))
			for _, x := range xs {
				fitted = append(fitted, opts.LineData{
					Value: []interface{}{x, fit.Eval(x)},
				})
			}
			fitLine := charts.NewLine()
			fitLine.AddSeries(fmt.Sprintf("Fit: O(n^%.2f)", fit.Exponent), fitted,
				charts.WithLineStyleOpts(opts.LineStyle{Color: "red", Type: "dashed"}))
			scatter.Overlap(fitLine)
		}
		page.AddCharts(scatter)
	}
	return renderToFile(path, page)
}

func fitSubtitle(in Inputs, algoID int) string {
	fit, ok := in.Fits[algoID]
	if !ok {
		return "not enough valid points for a fit"
	}
	return fmt.Sprintf("fitted exponent %.2f over %d points", fit.Exponent, fit.Points)
}

func lineData(s *sweep.Series) []opts.LineData {
	xs, times := s.Valid()
	data := make([]opts.LineData, 0, len(xs))
	for i := range xs {
		data = append(data, opts.LineData{Value: []interface{}{xs[i], times[i]}})
	}
	return data
}

type renderable interface {
	Render(w io.Writer) error
}

func renderToFile(path string, r renderable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := r.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
