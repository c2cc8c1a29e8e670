package verify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegraph/verify"
)

// path4 is 0-1-2-3, a spanning tree.
var path4 = [][]int{{1}, {0, 2}, {1, 3}, {2}}

// square is the 4-cycle 0-1-3-2-0.
var square = [][]int{{1, 2}, {0, 3}, {0, 3}, {1, 2}}

// split has two components: 0-1 and 2-3.
var split = [][]int{{1}, {0}, {3}, {2}}

func TestBFS_OrderAndDepth(t *testing.T) {
	star := [][]int{{1, 2, 3}, {0}, {0}, {0, 4}, {3}}
	res, err := verify.BFS(star, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2}, res.Depth)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, path)
}

func TestBFS_Errors(t *testing.T) {
	_, err := verify.BFS(nil, 0)
	assert.ErrorIs(t, err, verify.ErrEmptyGraph)

	_, err = verify.BFS(path4, 4)
	assert.ErrorIs(t, err, verify.ErrBadIndex)

	_, err = verify.BFS(path4, -1)
	assert.ErrorIs(t, err, verify.ErrBadIndex)

	_, err = verify.BFS([][]int{{7}}, 0)
	assert.ErrorIs(t, err, verify.ErrBadIndex)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := verify.BFS(path4, 0, verify.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := verify.BFS(path4, 0, verify.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPathTo_Unreachable(t *testing.T) {
	res, err := verify.BFS(split, 0)
	require.NoError(t, err)
	_, err = res.PathTo(3)
	assert.Error(t, err)
}

func TestConnected(t *testing.T) {
	ok, err := verify.Connected(path4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verify.Connected(split)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = verify.Connected([][]int{{}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAcyclic(t *testing.T) {
	cases := []struct {
		name string
		adj  [][]int
		want bool
	}{
		{"Path", path4, true},
		{"Forest", split, true},
		{"Single", [][]int{{}}, true},
		{"Square", square, false},
		{"Triangle", [][]int{{1, 2}, {0, 2}, {0, 1}}, false},
		{"SelfLoop", [][]int{{0}}, false},
		{"ParallelEdge", [][]int{{1, 1}, {0, 0}}, false},
		{"CycleInSecondComponent", [][]int{{1}, {0}, {3, 4}, {2, 4}, {2, 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := verify.Acyclic(tc.adj)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAcyclic_Errors(t *testing.T) {
	_, err := verify.Acyclic(nil)
	assert.ErrorIs(t, err, verify.ErrEmptyGraph)
	_, err = verify.Acyclic([][]int{{-1}})
	assert.ErrorIs(t, err, verify.ErrBadIndex)
}

func TestSymmetric(t *testing.T) {
	assert.True(t, verify.Symmetric(path4))
	assert.True(t, verify.Symmetric(square))
	assert.False(t, verify.Symmetric([][]int{{1}, {}}))
	assert.False(t, verify.Symmetric([][]int{{3}}))

	assert.True(t, verify.MatrixSymmetric([][]uint8{{0, 1}, {1, 0}}))
	assert.False(t, verify.MatrixSymmetric([][]uint8{{0, 1}, {0, 0}}))
	assert.False(t, verify.MatrixSymmetric([][]uint8{{0, 1}}))
}

func TestEdgeCount(t *testing.T) {
	n, err := verify.EdgeCount(square)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = verify.EdgeCount([][]int{{1}, {}})
	assert.ErrorIs(t, err, verify.ErrAsymmetric)
}

func TestAgree(t *testing.T) {
	mat := [][]uint8{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	}
	require.NoError(t, verify.Agree(path4, mat))

	mat[0][3] = 1
	assert.ErrorIs(t, verify.Agree(path4, mat), verify.ErrMismatch)
	mat[0][3] = 2
	assert.ErrorIs(t, verify.Agree(path4, mat), verify.ErrMismatch)
	assert.ErrorIs(t, verify.Agree(path4, mat[:3]), verify.ErrMismatch)
	assert.ErrorIs(t, verify.Agree(path4, [][]uint8{{0}, {0}, {0}, {0}}), verify.ErrMismatch)
}

func TestSpanningTree(t *testing.T) {
	cases := []struct {
		name string
		adj  [][]int
		err  error
	}{
		{"Path", path4, nil},
		{"Single", [][]int{{}}, nil},
		{"Empty", [][]int{}, verify.ErrEmptyGraph},
		{"BadIndex", [][]int{{5}}, verify.ErrBadIndex},
		{"Asymmetric", [][]int{{1}, {}}, verify.ErrAsymmetric},
		{"TooManyEdges", square, verify.ErrEdgeCount},
		{"TooFewEdges", split, verify.ErrEdgeCount},
		// Right edge count, but a triangle plus an isolated vertex.
		{"CycleAndIsolated", [][]int{{1, 2}, {0, 2}, {0, 1}, {}}, verify.ErrNotConnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := verify.SpanningTree(tc.adj)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSpanningTree_Report(t *testing.T) {
	rep, err := verify.SpanningTree(path4)
	require.NoError(t, err)
	assert.Equal(t, verify.Report{Vertices: 4, Edges: 3, Symmetric: true, Connected: true, Acyclic: true}, rep)
	assert.Equal(t, "vertices=4 edges=3 symmetric=true connected=true acyclic=true", rep.String())
}
