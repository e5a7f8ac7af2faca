// SPDX-License-Identifier: MIT

package match

import "fmt"

// Subject is one unit of a study group. ID is the only identity attribute;
// Features are opaque numeric covariates consumed by the distance metric and
// may be nil when costs are precomputed.
type Subject struct {
	ID       string    `json:"id" yaml:"id"`
	Features []float64 `json:"features,omitempty" yaml:"features,omitempty"`
}

// Group is an ordered collection of subjects.
type Group []Subject

// IDs returns the subject identifiers in group order.
func (g Group) IDs() []string {
	out := make([]string, len(g))
	for i, s := range g {
		out[i] = s.ID
	}

	return out
}

// Vectors returns the feature vectors in group order (not copied).
func (g Group) Vectors() [][]float64 {
	out := make([][]float64, len(g))
	for i, s := range g {
		out[i] = s.Features
	}

	return out
}

// Validate checks that every ID is non-empty and unique within the group.
func (g Group) Validate() error {
	seen := make(map[string]int, len(g))
	for i, s := range g {
		if s.ID == "" {
			return fmt.Errorf("%w: subject %d has an empty ID", ErrInvalidInput, i)
		}
		if j, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate ID %q at positions %d and %d", ErrInvalidInput, s.ID, j, i)
		}
		seen[s.ID] = i
	}

	return nil
}
