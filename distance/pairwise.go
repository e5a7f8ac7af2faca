// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pairmatch/matrix"
)

// Features packs feature vectors into a gonum matrix, one row per subject.
// It returns nil for an empty slice.
//
// Errors:
//   - ErrNoFeatures if the vectors have length zero.
//   - ErrDimensionMismatch if the vectors are ragged.
func Features(vectors [][]float64) (*mat.Dense, error) {
	if len(vectors) == 0 {
		return nil, nil
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, ErrNoFeatures
	}
	data := make([]float64, 0, len(vectors)*dim)
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: row %d has %d features, row 0 has %d", ErrDimensionMismatch, i, len(v), dim)
		}
		data = append(data, v...)
	}

	return mat.NewDense(len(vectors), dim, data), nil
}

// Pairwise applies fn to every (row of a, row of b) pair and returns the
// len(a)×len(b) cost matrix. A nil a or b stands for an empty group.
//
// Complexity: O(ra·rb·d).
func Pairwise(a, b *mat.Dense, fn Func) (*matrix.Cost, error) {
	ra, ca := dims(a)
	rb, cb := dims(b)
	if ra > 0 && rb > 0 && ca != cb {
		return nil, fmt.Errorf("%w: %d vs %d features", ErrDimensionMismatch, ca, cb)
	}

	data := make([]float64, 0, ra*rb)
	for i := 0; i < ra; i++ {
		u := a.RawRowView(i)
		for j := 0; j < rb; j++ {
			data = append(data, fn(u, b.RawRowView(j)))
		}
	}

	return matrix.NewCost(ra, rb, data)
}

// PairwiseRows is Pairwise over plain vectors with a named metric.
func PairwiseRows(a, b [][]float64, m Metric) (*matrix.Cost, error) {
	fn, err := Lookup(m)
	if err != nil {
		return nil, err
	}
	fa, err := Features(a)
	if err != nil {
		return nil, err
	}
	fb, err := Features(b)
	if err != nil {
		return nil, err
	}

	return Pairwise(fa, fb, fn)
}

func dims(m *mat.Dense) (int, int) {
	if m == nil {
		return 0, 0
	}

	return m.Dims()
}
