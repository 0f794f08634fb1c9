package trackers

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// MovingAverage returns the mean of each window of data ending at each
// index. Windows at the start of data are shortened to the available
// points.
func MovingAverage(data []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	avg := make([]float64, len(data))
	for i := range data {
		start := max(0, i-window+1)
		avg[i] = stat.Mean(data[start:i+1], nil)
	}
	return avg
}

// Plot saves a line plot of data against the episode number to
// filename, along with its moving average over window episodes. The
// image format is determined by the filename extension.
func Plot(filename, title, ylabel string, data []float64, window int) error {
	if len(data) == 0 {
		return fmt.Errorf("plot: no data to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = ylabel

	series := [][]float64{data}
	names := []string{ylabel}
	if window > 1 {
		series = append(series, MovingAverage(data, window))
		names = append(names, fmt.Sprintf("%d episode average", window))
	}

	for i, values := range series {
		points := make(plotter.XYs, len(values))
		for j, v := range values {
			points[j] = plotter.XY{
				X: float64(j + 1),
				Y: v,
			}
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(names[i], line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("plot: could not save %v: %w", filename, err)
	}
	return nil
}
