// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/pairmatch/match"
)

type renderFunc func(io.Writer, *match.Matching) error

func renderer(format string) (renderFunc, error) {
	switch strings.ToLower(format) {
	case "", "table":
		return renderTable, nil
	case "csv":
		return renderCSV, nil
	case "json":
		return renderJSON, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want table, csv or json)", format)
	}
}

// renderTable prints an aligned box table; column widths count display
// cells so CJK and emoji IDs line up.
func renderTable(w io.Writer, m *match.Matching) error {
	p := message.NewPrinter(language.English)
	head := []string{"group1", "group2", "cost"}
	rows := make([][]string, 0, len(m.Pairs))
	for _, pr := range m.Pairs {
		rows = append(rows, []string{pr.Group1, pr.Group2, p.Sprintf("%d", pr.Cost)})
	}

	width := make([]int, len(head))
	for _, r := range append([][]string{head}, rows...) {
		for c, cell := range r {
			width[c] = max(width[c], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	divider := "+"
	for _, wd := range width {
		divider += strings.Repeat("-", wd+2) + "+"
	}
	divider += "\n"
	line := func(r []string) {
		b.WriteString("|")
		for c, cell := range r {
			if c == len(r)-1 {
				b.WriteString(" " + runewidth.FillLeft(cell, width[c]) + " |")
				continue
			}
			b.WriteString(" " + runewidth.FillRight(cell, width[c]) + " |")
		}
		b.WriteString("\n")
	}

	b.WriteString(divider)
	line(head)
	b.WriteString(divider)
	for _, r := range rows {
		line(r)
	}
	b.WriteString(divider)
	b.WriteString(p.Sprintf("%d pairs, total cost %d (small side: %s)\n", len(m.Pairs), m.TotalCost, m.SmallSide))

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCSV(w io.Writer, m *match.Matching) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"group1", "group2", "cost"}); err != nil {
		return err
	}
	for _, p := range m.Pairs {
		if err := cw.Write([]string{p.Group1, p.Group2, strconv.FormatInt(p.Cost, 10)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func renderJSON(w io.Writer, m *match.Matching) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		*match.Matching
		SmallSide string `json:"small_side"`
	}{m, m.SmallSide.String()})
}
