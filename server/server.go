package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/types"
)

// Server answers MDP queries over HTTP. The environment is shared
// between requests, it is read-only so no locking is needed.
type Server struct {
	env    *grid.GridEnvironment
	router *gin.Engine
}

type stateResponse struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Hash string `json:"hash"`
}

type actionResponse struct {
	Action string        `json:"action"`
	Next   stateResponse `json:"next"`
}

type outcomeResponse struct {
	State stateResponse `json:"state"`
	Prob  float64       `json:"prob"`
}

func New(env *grid.GridEnvironment) *Server {
	s := &Server{
		env:    env,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery())

	s.router.GET("/states", s.states)
	st := s.router.Group("/states/:row/:col")
	st.GET("/actions", s.actions)
	st.GET("/reward", s.reward)
	st.GET("/terminal", s.terminal)
	st.GET("/transitions", s.transitions)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until the context is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func toResponse(s types.State) stateResponse {
	p := s.(grid.Position)
	return stateResponse{Row: p.Row, Col: p.Col, Hash: p.Hash()}
}

func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, grid.ErrDomain):
		status = http.StatusBadRequest
	case errors.Is(err, grid.ErrArithmetic):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func position(c *gin.Context) (grid.Position, error) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		return grid.Position{}, errors.Wrapf(grid.ErrDomain, "row %q", c.Param("row"))
	}
	col, err := strconv.Atoi(c.Param("col"))
	if err != nil {
		return grid.Position{}, errors.Wrapf(grid.ErrDomain, "col %q", c.Param("col"))
	}
	return grid.Position{Row: row, Col: col}, nil
}

func (s *Server) states(c *gin.Context) {
	states := s.env.States()
	out := make([]stateResponse, len(states))
	for i, st := range states {
		out[i] = toResponse(st)
	}
	c.JSON(http.StatusOK, gin.H{"states": out})
}

func (s *Server) actions(c *gin.Context) {
	p, err := position(c)
	if err != nil {
		fail(c, err)
		return
	}
	pairs, err := s.env.Actions(p)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]actionResponse, len(pairs))
	for i, as := range pairs {
		out[i] = actionResponse{Action: as.Action.Hash(), Next: toResponse(as.Next)}
	}
	c.JSON(http.StatusOK, gin.H{"actions": out})
}

func (s *Server) reward(c *gin.Context) {
	p, err := position(c)
	if err != nil {
		fail(c, err)
		return
	}
	r, err := s.env.Reward(p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reward": r})
}

func (s *Server) terminal(c *gin.Context) {
	p, err := position(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"terminal": s.env.IsTerminal(p)})
}

func (s *Server) transitions(c *gin.Context) {
	p, err := position(c)
	if err != nil {
		fail(c, err)
		return
	}
	d, err := grid.ParseDirection(c.Query("action"))
	if err != nil {
		fail(c, err)
		return
	}
	outcomes, err := s.env.Transitions(p, d)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]outcomeResponse, len(outcomes))
	for i, o := range outcomes {
		out[i] = outcomeResponse{State: toResponse(o.State), Prob: o.Prob}
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": out})
}
