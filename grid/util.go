package grid

import (
	"os"
	"path"
	"strconv"

	"github.com/zeu5/gridworld/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GridDataSet is a table of values over the grid, indexed [row][col].
// Row 0 is drawn at the bottom of the heatmaps.
type GridDataSet struct {
	Values [][]float64
	Height int
	Width  int
}

var _ plotter.GridXYZ = &GridDataSet{}

func NewGridDataSet(height, width int) *GridDataSet {
	values := make([][]float64, height)
	for i := range values {
		values[i] = make([]float64, width)
	}
	return &GridDataSet{
		Values: values,
		Height: height,
		Width:  width,
	}
}

func (g *GridDataSet) Dims() (int, int) {
	return g.Width, g.Height
}

func (g *GridDataSet) Z(j, i int) float64 {
	return g.Values[i][j]
}

func (g *GridDataSet) X(j int) float64 {
	return float64(j)
}

func (g *GridDataSet) Y(i int) float64 {
	return float64(i)
}

func (g *GridDataSet) Min() float64 {
	min := 0.0
	for i, row := range g.Values {
		for j, v := range row {
			if (i == 0 && j == 0) || v < min {
				min = v
			}
		}
	}
	return min
}

func (g *GridDataSet) Max() float64 {
	max := 0.0
	for i, row := range g.Values {
		for j, v := range row {
			if (i == 0 && j == 0) || v > max {
				max = v
			}
		}
	}
	return max
}

// VisitAnalyzer counts how often every cell was entered
type VisitAnalyzer struct {
	height int
	width  int
	ds     *GridDataSet
}

var _ types.Analyzer = &VisitAnalyzer{}

func NewVisitAnalyzer(height, width int) *VisitAnalyzer {
	return &VisitAnalyzer{
		height: height,
		width:  width,
		ds:     NewGridDataSet(height, width),
	}
}

// Analyze counts the start state of the episode and every state entered after it
func (v *VisitAnalyzer) Analyze(_ int, _ int, _ string, trace *types.Trace) {
	if start, _, _, ok := trace.Get(0); ok {
		v.visit(start)
	}
	for i := 0; i < trace.Len(); i++ {
		_, _, next, _ := trace.Get(i)
		v.visit(next)
	}
}

func (v *VisitAnalyzer) visit(s types.State) {
	p, ok := s.(Position)
	if !ok || p.Row < 0 || p.Row >= v.height || p.Col < 0 || p.Col >= v.width {
		return
	}
	v.ds.Values[p.Row][p.Col] += 1
}

func (v *VisitAnalyzer) DataSet() types.DataSet {
	return v.ds
}

func (v *VisitAnalyzer) Reset() {
	v.ds = NewGridDataSet(v.height, v.width)
}

// VisitHeatmapComparator saves one heatmap of visits per experiment
func VisitHeatmapComparator(plotPath string) types.Comparator {
	return func(run int, names []string, ds []types.DataSet) error {
		if err := os.MkdirAll(plotPath, os.ModePerm); err != nil {
			return err
		}
		for i, name := range names {
			dataSet := ds[i].(*GridDataSet)
			file := path.Join(plotPath, strconv.Itoa(run)+"_"+name+"_visits.png")
			if err := saveHeatmap(dataSet, name+" visits", file); err != nil {
				return err
			}
		}
		return nil
	}
}

// SaveValueHeatmap draws the values laid out by ValueGrid
func SaveValueHeatmap(values [][]float64, title, file string) error {
	ds := &GridDataSet{Values: values, Height: len(values)}
	if len(values) > 0 {
		ds.Width = len(values[0])
	}
	return saveHeatmap(ds, title, file)
}

func saveHeatmap(ds *GridDataSet, title, file string) error {
	hm := plotter.NewHeatMap(ds, palette.Heat(20, 1))
	if hm.Max == hm.Min {
		hm.Max = hm.Min + 1
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Col"
	p.Y.Label.Text = "Row"
	p.Add(hm)
	return p.Save(4*vg.Inch, 4*vg.Inch, file)
}
