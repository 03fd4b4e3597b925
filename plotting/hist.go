package plotting

import (
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ZeroRunHist 零游程长度分布柱状图，每个出现过的长度一根柱子。
// 分箱由调用方的直方图显式决定，这里不再做任何归并。
func ZeroRunHist(path string, hist map[int]int) error {
	lengths := make([]int, 0, len(hist))
	for l := range hist {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	values := make(plotter.Values, len(lengths))
	labels := make([]string, len(lengths))
	for i, l := range lengths {
		values[i] = float64(hist[l])
		labels[i] = strconv.Itoa(l)
	}

	p := plot.New()
	p.Title.Text = "Zero-Run Length Distribution"
	p.X.Label.Text = "run length (samples)"
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
