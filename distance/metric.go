// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors.
var (
	// ErrUnsupported indicates a metric name outside the registry.
	ErrUnsupported = errors.New("distance: unsupported metric")

	// ErrDimensionMismatch indicates feature vectors of different lengths.
	ErrDimensionMismatch = errors.New("distance: feature dimension mismatch")

	// ErrNoFeatures indicates subjects without any feature columns.
	ErrNoFeatures = errors.New("distance: empty feature vectors")
)

// Metric names a pairwise distance function.
type Metric string

// Known metric names.
const (
	Precomputed Metric = "precomputed"
	Euclidean   Metric = "euclidean"
	SqEuclidean Metric = "sqeuclidean"
	Cityblock   Metric = "cityblock"
	Manhattan   Metric = "manhattan"
	Chebyshev   Metric = "chebyshev"
	Cosine      Metric = "cosine"
	BrayCurtis  Metric = "braycurtis"
	Canberra    Metric = "canberra"
	Hamming     Metric = "hamming"
)

// Func computes the distance between two equally long vectors.
type Func func(a, b []float64) float64

var registry = map[Metric]Func{
	Euclidean:   euclidean,
	SqEuclidean: sqeuclidean,
	Cityblock:   cityblock,
	Manhattan:   cityblock,
	Chebyshev:   chebyshev,
	Cosine:      cosine,
	BrayCurtis:  braycurtis,
	Canberra:    canberra,
	Hamming:     hamming,
}

// Lookup returns the distance function registered under m.
// Names are matched case-insensitively.
func Lookup(m Metric) (Func, error) {
	fn, ok := registry[Metric(strings.ToLower(string(m)))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, string(m))
	}

	return fn, nil
}

// IsPrecomputed reports whether m is the precomputed sentinel.
func IsPrecomputed(m Metric) bool {
	return strings.EqualFold(string(m), string(Precomputed))
}

// Names lists the supported metric names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for m := range registry {
		out = append(out, string(m))
	}
	sort.Strings(out)

	return out
}

func euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

func sqeuclidean(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func cityblock(a, b []float64) float64 { return floats.Distance(a, b, 1) }

func chebyshev(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }

// cosine is NaN for a zero vector; ValidateCost rejects it downstream.
func cosine(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	d := 1 - floats.Dot(a, b)/(na*nb)
	if d < 0 {
		// rounding on parallel vectors
		return 0
	}

	return d
}

func braycurtis(a, b []float64) float64 {
	var num, den float64
	for i := range a {
		num += math.Abs(a[i] - b[i])
		den += math.Abs(a[i] + b[i])
	}

	return num / den
}

func canberra(a, b []float64) float64 {
	var sum float64
	for i := range a {
		den := math.Abs(a[i]) + math.Abs(b[i])
		if den == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / den
	}

	return sum
}

func hamming(a, b []float64) float64 {
	var diff int
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}

	return float64(diff) / float64(len(a))
}
