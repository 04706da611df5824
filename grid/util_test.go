package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/gridworld/types"
)

func TestVisitAnalyzer(t *testing.T) {
	trace := types.NewTrace()
	trace.Append(0, Position{0, 0}, Right, Position{0, 1}, 0)
	trace.Append(1, Position{0, 1}, Down, Position{1, 1}, 1)
	trace.Append(2, Position{1, 1}, Stay, Position{1, 1}, 1)

	a := NewVisitAnalyzer(2, 2)
	a.Analyze(0, 0, "test", trace)

	ds := a.DataSet().(*GridDataSet)
	assert.Equal(t, [][]float64{{1, 1}, {0, 2}}, ds.Values)
	c, r := ds.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 2.0, ds.Z(1, 1))
	assert.Equal(t, 0.0, ds.Min())
	assert.Equal(t, 2.0, ds.Max())

	a.Analyze(0, 1, "test", types.NewTrace())
	assert.Equal(t, [][]float64{{1, 1}, {0, 2}}, a.DataSet().(*GridDataSet).Values)

	a.Reset()
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, a.DataSet().(*GridDataSet).Values)
}

func TestHeatmaps(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "values.png")
	require.NoError(t, SaveValueHeatmap([][]float64{{0, 1}, {-1, 0.5}}, "values", file))
	_, err := os.Stat(file)
	assert.NoError(t, err)

	a := NewVisitAnalyzer(2, 2)
	comp := VisitHeatmapComparator(filepath.Join(dir, "visits"))
	require.NoError(t, comp(0, []string{"Random"}, []types.DataSet{a.DataSet()}))
	_, err = os.Stat(filepath.Join(dir, "visits", "0_Random_visits.png"))
	assert.NoError(t, err)
}
