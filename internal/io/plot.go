package io

import (
	"fmt"

	"github.com/jjtimmons/resite/internal/digest"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot saves a bar chart of each enzyme's cut frequency. The image format
// comes from the file's extension (png, svg, pdf, ...).
func Plot(path string, target Target, matches []digest.Match) error {
	if len(matches) == 0 {
		return fmt.Errorf("no enzymes cut %s, nothing to plot", target.ID)
	}

	values := make(plotter.Values, len(matches))
	names := make([]string, len(matches))
	for i, m := range matches {
		values[i] = float64(m.Frequency)
		names[i] = m.Name
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cut sites in %s (%d bp)", target.ID, len(target.Seq))
	p.Y.Label.Text = "cuts"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to build the bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	width := vg.Length(len(matches)) * vg.Points(30)
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	if err := p.Save(width, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save the plot to %s: %w", path, err)
	}
	return nil
}
