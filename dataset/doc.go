// SPDX-License-Identifier: MIT

// Package dataset reads matching inputs from CSV.
//
// A group file has a header row. One column (by default "ID") holds the
// subject identifier; every other column is a numeric feature, in header
// order:
//
//	ID,age,income
//	p1,34,51000
//	p2,41,38000
//
// A cost file is a headerless numeric grid, one row per group 1 subject and
// one column per group 2 subject.
package dataset
