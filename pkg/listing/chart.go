package listing

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/program"
)

// WriteChart renders opcode and shape usage of p as a standalone HTML page.
func WriteChart(w io.Writer, p *program.Program) error {
	st := p.Stats()

	names := make([]string, len(st.Opcodes))
	counts := make([]opts.BarData, len(st.Opcodes))
	for i, c := range st.Opcodes {
		names[i] = c.Opcode.String()
		counts[i] = opts.BarData{Value: c.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Opcode usage",
			Subtitle: fmt.Sprintf("%d instructions", st.Instructions),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).AddSeries("count", counts)

	var shapes []opts.PieData
	for _, s := range isa.Shapes() {
		if n := st.Shapes[s]; n > 0 {
			shapes = append(shapes, opts.PieData{Name: s.String(), Value: n})
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Operand shapes"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("shapes", shapes).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)

	page := components.NewPage()
	page.AddCharts(bar, pie)
	return page.Render(w)
}
