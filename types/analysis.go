package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ReturnsAnalyzer records the undiscounted return of every episode
type ReturnsAnalyzer struct {
	returns []float64
}

var _ Analyzer = &ReturnsAnalyzer{}

func NewReturnsAnalyzer() *ReturnsAnalyzer {
	return &ReturnsAnalyzer{
		returns: make([]float64, 0),
	}
}

func (r *ReturnsAnalyzer) Analyze(_ int, _ int, _ string, trace *Trace) {
	r.returns = append(r.returns, trace.Return())
}

func (r *ReturnsAnalyzer) DataSet() DataSet {
	out := make([]float64, len(r.returns))
	copy(out, r.returns)
	return out
}

func (r *ReturnsAnalyzer) Reset() {
	r.returns = make([]float64, 0)
}

// ReturnsPlotter plots the per episode returns of all the experiments in one figure
func ReturnsPlotter(plotPath string) Comparator {
	return func(run int, names []string, ds []DataSet) error {
		if err := os.MkdirAll(plotPath, os.ModePerm); err != nil {
			return err
		}
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"
		for i := 0; i < len(names); i++ {
			returns := ds[i].([]float64)
			points := make(plotter.XYs, len(returns))
			for j, v := range returns {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_returns.png"))
	}
}

// CoverageAnalyzer tracks the number of unique states seen after each episode
type CoverageAnalyzer struct {
	uniqueStates    map[string]bool
	numUniqueStates []int
}

var _ Analyzer = &CoverageAnalyzer{}

func NewCoverageAnalyzer() *CoverageAnalyzer {
	return &CoverageAnalyzer{
		uniqueStates:    make(map[string]bool),
		numUniqueStates: make([]int, 0),
	}
}

func (c *CoverageAnalyzer) Analyze(_ int, _ int, _ string, trace *Trace) {
	for j := 0; j < trace.Len(); j++ {
		s, _, next, _ := trace.Get(j)
		c.uniqueStates[s.Hash()] = true
		c.uniqueStates[next.Hash()] = true
	}
	c.numUniqueStates = append(c.numUniqueStates, len(c.uniqueStates))
}

func (c *CoverageAnalyzer) DataSet() DataSet {
	out := make([]int, len(c.numUniqueStates))
	copy(out, c.numUniqueStates)
	return out
}

func (c *CoverageAnalyzer) Reset() {
	c.uniqueStates = make(map[string]bool)
	c.numUniqueStates = make([]int, 0)
}

func CoveragePlotter(plotPath string) Comparator {
	return func(run int, names []string, ds []DataSet) error {
		if err := os.MkdirAll(plotPath, os.ModePerm); err != nil {
			return err
		}
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "States covered"
		for i := 0; i < len(names); i++ {
			uniqueStates := ds[i].([]int)
			points := make(plotter.XYs, len(uniqueStates))
			for j, v := range uniqueStates {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			if len(uniqueStates) > 0 {
				fmt.Printf("Number of unique states: %d for experiment: %s\n", uniqueStates[len(uniqueStates)-1], names[i])
			}
		}
		return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_coverage.png"))
	}
}
