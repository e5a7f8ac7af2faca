// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pairmatch/match"
	"github.com/katalvlaran/pairmatch/matrix"
)

// DefaultIDColumn is the identifier column used when none is given.
const DefaultIDColumn = "ID"

var (
	// ErrNoHeader reports a group file without a header row.
	ErrNoHeader = errors.New("dataset: missing header row")

	// ErrNoIDColumn reports a header that lacks the identifier column.
	ErrNoIDColumn = errors.New("dataset: identifier column not found")

	// ErrBadValue reports a cell that does not parse as a number.
	ErrBadValue = errors.New("dataset: malformed numeric value")
)

// ReadGroup parses a group file. idColumn is matched case-insensitively
// after trimming; an empty idColumn means DefaultIDColumn. Subject order
// follows row order. Duplicate IDs are left for match.Group.Validate.
func ReadGroup(r io.Reader, idColumn string) (match.Group, []string, error) {
	if idColumn == "" {
		idColumn = DefaultIDColumn
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: header: %w", err)
	}

	idIdx := -1
	features := make([]string, 0, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if idIdx < 0 && strings.EqualFold(h, strings.TrimSpace(idColumn)) {
			idIdx = i
			continue
		}
		features = append(features, h)
	}
	if idIdx < 0 {
		return nil, nil, fmt.Errorf("%w: %q in %v", ErrNoIDColumn, idColumn, header)
	}

	var g match.Group
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}

		s := match.Subject{ID: strings.TrimSpace(rec[idIdx])}
		if len(features) > 0 {
			s.Features = make([]float64, 0, len(features))
		}
		for i, cell := range rec {
			if i == idIdx {
				continue
			}
			v, err := parseCell(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d column %q: %w", ErrBadValue, line, header[i], err)
			}
			s.Features = append(s.Features, v)
		}
		g = append(g, s)
	}

	return g, features, nil
}

// ReadCost parses a headerless numeric grid into a cost matrix. Blank input
// yields an empty 0×0 matrix.
func ReadCost(r io.Reader) (*matrix.Cost, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		row := make([]float64, len(rec))
		for j, cell := range rec {
			if row[j], err = parseCell(cell); err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %w", ErrBadValue, line, j+1, err)
			}
		}
		rows = append(rows, row)
	}

	return matrix.FromRows(rows)
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
