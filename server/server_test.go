package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/gridworld/grid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, w *grid.World) *Server {
	t.Helper()
	env, err := w.Environment()
	require.NoError(t, err)
	return New(env)
}

func get(t *testing.T, s *Server, url string, out interface{}) int {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	s.Handler().ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestStates(t *testing.T) {
	s := newServer(t, grid.DefaultWorld())

	var resp struct {
		States []stateResponse `json:"states"`
	}
	assert.Equal(t, http.StatusOK, get(t, s, "/states", &resp))
	require.Len(t, resp.States, 11)
	assert.Equal(t, stateResponse{Row: 0, Col: 0, Hash: "(0, 0)"}, resp.States[0])
	assert.Equal(t, stateResponse{Row: 1, Col: 2, Hash: "(1, 2)"}, resp.States[5])
}

func TestActions(t *testing.T) {
	s := newServer(t, grid.DefaultWorld())

	var resp struct {
		Actions []actionResponse `json:"actions"`
	}
	assert.Equal(t, http.StatusOK, get(t, s, "/states/1/0/actions", &resp))
	require.Len(t, resp.Actions, 3)
	assert.Equal(t, "down", resp.Actions[0].Action)
	assert.Equal(t, 2, resp.Actions[0].Next.Row)
	assert.Equal(t, "up", resp.Actions[1].Action)
	assert.Equal(t, "stay", resp.Actions[2].Action)

	var errResp map[string]string
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/states/1/1/actions", &errResp))
	assert.NotEmpty(t, errResp["error"])
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/states/a/1/actions", nil))
}

func TestRewardAndTerminal(t *testing.T) {
	s := newServer(t, grid.DefaultWorld())

	var reward struct {
		Reward float64 `json:"reward"`
	}
	assert.Equal(t, http.StatusOK, get(t, s, "/states/1/3/reward", &reward))
	assert.Equal(t, -1.0, reward.Reward)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/states/9/9/reward", nil))

	var terminal struct {
		Terminal bool `json:"terminal"`
	}
	assert.Equal(t, http.StatusOK, get(t, s, "/states/0/3/terminal", &terminal))
	assert.True(t, terminal.Terminal)
	assert.Equal(t, http.StatusOK, get(t, s, "/states/2/0/terminal", &terminal))
	assert.False(t, terminal.Terminal)
}

func TestTransitions(t *testing.T) {
	s := newServer(t, grid.DefaultWorld())

	var resp struct {
		Outcomes []outcomeResponse `json:"outcomes"`
	}
	assert.Equal(t, http.StatusOK, get(t, s, "/states/0/2/transitions?action=r", &resp))
	require.Len(t, resp.Outcomes, 4)
	assert.Equal(t, "(0, 3)", resp.Outcomes[0].State.Hash)
	assert.InDelta(t, 0.8, resp.Outcomes[0].Prob, 1e-12)
	sum := 0.0
	for _, o := range resp.Outcomes {
		sum += o.Prob
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/states/0/2/transitions?action=north", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/states/0/2/transitions", nil))
}

func TestTransitionsArithmeticError(t *testing.T) {
	transProb := 0.5
	s := newServer(t, &grid.World{
		Grid:      [][]string{{"0", "x"}, {"x", "0"}},
		TransProb: &transProb,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, get(t, s, "/states/0/0/transitions?action=stay", nil))
	assert.Equal(t, http.StatusOK, get(t, s, "/states/0/0/transitions?action=right", nil))
}
