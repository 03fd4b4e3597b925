// Package plotting 渲染诊断图：双轴温度时序图和零游程柱状图。
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tempviz/common"
	"tempviz/sensor"
)

type FigureConfig struct {
	Path         string
	MarkerSize   int
	UseTimestamp bool
}

// TimeSeries 画原始采样散点加各窗口的滑动平均曲线。
// 左轴华氏度，右轴摄氏度；时间轴是采样序号（单位间隔）。
func TimeSeries(cfg FigureConfig, samples []float64, smoothed []common.Smoothed) error {
	p := plot.New()
	p.Title.Text = "Average Workbench Temperature"
	if cfg.UseTimestamp {
		p.X.Label.Text = "Timestamp"
	} else {
		p.X.Label.Text = "Relative Time (s)"
	}
	p.Y.Label.Text = "Temp (F)"
	p.Add(plotter.NewGrid())

	raw := make(plotter.XYs, len(samples))
	for i, v := range samples {
		raw[i].X = float64(i)
		raw[i].Y = v
	}
	scatter, err := plotter.NewScatter(raw)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(float64(cfg.MarkerSize))
	scatter.GlyphStyle.Color = plotutil.Color(3)
	p.Add(scatter)
	p.Legend.Add("raw data", scatter)

	for i, s := range smoothed {
		// valid 卷积的输出从 width-1 开始对齐到时间轴
		xys := make(plotter.XYs, len(s.Data))
		for j, v := range s.Data {
			xys[j].X = float64(s.Width - 1 + j)
			xys[j].Y = v
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = plotutil.Color(i + 4)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%d smp avg", s.Width), line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	p.Add(celsiusAxis{})

	return p.Save(10*vg.Inch, 8*vg.Inch, cfg.Path)
}

// celsiusAxis 在绘图区右缘补一条摄氏刻度。
// gonum/plot 没有双生轴，用自定义 Plotter 按最终的华氏 Y 范围换算刻度位置。
type celsiusAxis struct{}

func (celsiusAxis) Plot(c draw.Canvas, plt *plot.Plot) {
	_, trY := plt.Transforms(&c)

	sty := plt.Y.Tick.Label
	sty.XAlign = text.XRight
	sty.YAlign = text.YCenter

	tickLen := vg.Points(4)
	cmin := sensor.ToCelsius(plt.Y.Min)
	cmax := sensor.ToCelsius(plt.Y.Max)
	for _, t := range (plot.DefaultTicks{}).Ticks(cmin, cmax) {
		if t.IsMinor() {
			continue
		}
		y := trY(t.Value*1.8 + 32)
		if y < c.Min.Y || y > c.Max.Y {
			continue
		}
		c.StrokeLine2(plt.Y.Tick.LineStyle, c.Max.X, y, c.Max.X-tickLen, y)
		c.FillText(sty, vg.Point{X: c.Max.X - tickLen - vg.Points(2), Y: y}, t.Label)
	}

	label := plt.Y.Tick.Label
	label.XAlign = text.XRight
	label.YAlign = text.YTop
	c.FillText(label, vg.Point{X: c.Max.X - vg.Points(2), Y: c.Max.Y - vg.Points(2)}, "Temp (C)")
}
