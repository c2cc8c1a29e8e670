package verify

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// arcSet collects every directed arc u→v of adj. Out-of-range neighbors
// are reported as ErrBadIndex.
func arcSet(adj [][]int) (mapset.Set[[2]int], error) {
	arcs := mapset.New[[2]int]()
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if v < 0 || v >= len(adj) {
				return arcs, fmt.Errorf("%w: %d lists neighbor %d", ErrBadIndex, u, v)
			}
			arcs.Put([2]int{u, v})
		}
	}

	return arcs, nil
}

// Symmetric reports whether every arc u→v in adj is mirrored by v→u.
// Lists with out-of-range neighbors are not symmetric.
func Symmetric(adj [][]int) bool {
	arcs, err := arcSet(adj)
	if err != nil {
		return false
	}
	symmetric := true
	arcs.Each(func(a [2]int) {
		if !arcs.Has([2]int{a[1], a[0]}) {
			symmetric = false
		}
	})

	return symmetric
}

// MatrixSymmetric reports whether m is square and m[i][j] == m[j][i].
func MatrixSymmetric(m [][]uint8) bool {
	n := len(m)
	for i := range m {
		if len(m[i]) != n {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}

	return true
}

// EdgeCount returns the number of undirected edges in a symmetric list.
// Returns ErrAsymmetric for lists that are not symmetric.
func EdgeCount(adj [][]int) (int, error) {
	if !Symmetric(adj) {
		return 0, ErrAsymmetric
	}
	arcs := 0
	for _, nbrs := range adj {
		arcs += len(nbrs)
	}

	return arcs / 2, nil
}

// Agree checks that list and matrix describe the same graph: m is a square
// 0/1 matrix of the same order as adj, and m[u][v] == 1 exactly when v is
// listed in adj[u].
func Agree(adj [][]int, m [][]uint8) error {
	n := len(adj)
	if len(m) != n {
		return fmt.Errorf("%w: list has %d vertices, matrix %d rows", ErrMismatch, n, len(m))
	}
	arcs, err := arcSet(adj)
	if err != nil {
		return err
	}
	for u := range m {
		if len(m[u]) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrMismatch, u, len(m[u]), n)
		}
		for v, x := range m[u] {
			switch {
			case x > 1:
				return fmt.Errorf("%w: entry [%d][%d] = %d is not 0/1", ErrMismatch, u, v, x)
			case (x == 1) != arcs.Has([2]int{u, v}):
				return fmt.Errorf("%w: entry [%d][%d] = %d", ErrMismatch, u, v, x)
			}
		}
	}

	return nil
}
