package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/zeu5/gridworld/types"
)

// SolvedAgent exposes the learned value function and policy of an agent
type SolvedAgent interface {
	Value(types.State) float64
	Action(types.State) (types.Action, error)
}

// NoPolicyGlyph is printed for terminal and blocked cells
const NoPolicyGlyph = "-"

const cellWidth = 20

// ValueGrid lays out the agent values over the grid, blocked cells hold 0
func ValueGrid(env *GridEnvironment, agent SolvedAgent) [][]float64 {
	values := make([][]float64, env.Height())
	for i := range values {
		values[i] = make([]float64, env.Width())
		for j := range values[i] {
			p := Position{Row: i, Col: j}
			if c, _ := env.Cell(p); c.IsBlocked() {
				continue
			}
			values[i][j] = agent.Value(p)
		}
	}
	return values
}

// PolicyGrid lays out the glyph of the agent action for every cell
func PolicyGrid(env *GridEnvironment, agent SolvedAgent) ([][]string, error) {
	policy := make([][]string, env.Height())
	for i := range policy {
		policy[i] = make([]string, env.Width())
		for j := range policy[i] {
			p := Position{Row: i, Col: j}
			if c, _ := env.Cell(p); c.IsBlocked() || env.IsTerminal(p) {
				policy[i][j] = NoPolicyGlyph
				continue
			}
			a, err := agent.Action(p)
			if err != nil {
				return nil, errors.Wrapf(err, "action for %s", p)
			}
			d, err := toDirection(a)
			if err != nil {
				return nil, err
			}
			policy[i][j] = d.Glyph()
		}
	}
	return policy, nil
}

// formatValue keeps four significant digits, whole numbers keep a ".0" suffix
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', 4, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func FormatValueGrid(values [][]float64) string {
	var b strings.Builder
	for _, row := range values {
		for _, v := range row {
			fmt.Fprintf(&b, "%*s", cellWidth, formatValue(v))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func FormatPolicyGrid(policy [][]string) string {
	var b strings.Builder
	for _, row := range policy {
		for _, g := range row {
			fmt.Fprintf(&b, "%*s", cellWidth, g)
		}
		b.WriteString("\n")
	}
	return b.String()
}
