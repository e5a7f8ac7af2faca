// SPDX-License-Identifier: MIT

package match

import "fmt"

// Side names one of the two caller groups.
type Side int

const (
	// Group1 is the first group passed to Match.
	Group1 Side = iota + 1
	// Group2 is the second group passed to Match.
	Group2
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Group1:
		return "group1"
	case Group2:
		return "group2"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Roles records which caller group plays the small (source) side of the
// network. Downstream steps read it instead of re-deriving the choice.
type Roles struct {
	Small     Group
	Large     Group
	SmallSide Side
}

// Swapped reports whether group 2 is the small side, i.e. whether a
// caller-supplied |group1|×|group2| cost matrix has to be transposed.
func (r Roles) Swapped() bool { return r.SmallSide == Group2 }

// AssignRoles makes the group with fewer subjects the small side. On equal
// sizes group 2 is the small side; this tie-break is fixed so results are
// reproducible across releases.
func AssignRoles(g1, g2 Group) Roles {
	if len(g1) < len(g2) {
		return Roles{Small: g1, Large: g2, SmallSide: Group1}
	}

	return Roles{Small: g2, Large: g1, SmallSide: Group2}
}

// orient returns the pair (group 1 ID, group 2 ID) for small subject i
// matched to large subject j.
func (r Roles) orient(i, j int) (string, string) {
	if r.SmallSide == Group1 {
		return r.Small[i].ID, r.Large[j].ID
	}

	return r.Large[j].ID, r.Small[i].ID
}
