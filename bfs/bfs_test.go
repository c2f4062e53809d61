package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/bfs"
	"github.com/katalvlaran/katas/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleDepths covers an undirected 4-cycle A-B-C-D-A.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestBFS_Disconnected checks that unreachable vertices are reported.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("3", "3")

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)
	assert.True(t, res.Reached("2"))
	assert.False(t, res.Reached("3"))

	_, err = res.PathTo("3")
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "d")

	res, err := bfs.BFS(g, "a", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	stop := errors.New("stop")

	_, err := bfs.BFS(g, "a", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "b" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "a", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
