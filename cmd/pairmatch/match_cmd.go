// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairmatch/dataset"
	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/match"
	"github.com/katalvlaran/pairmatch/matrix"
)

type matchFlags struct {
	metric      string
	costs       string
	idColumn    string
	rounding    string
	rejectEmpty bool
	format      string
}

func newMatchCmd(a *app) *cobra.Command {
	f := &matchFlags{}
	cmd := &cobra.Command{
		Use:   "match GROUP1.csv GROUP2.csv",
		Short: "Match two CSV groups and print the pairs",
		Long: `Reads two group files (an ID column plus numeric feature columns) and
prints the minimum-cost matching of the smaller group into the larger one.

With --metric precomputed, --costs names a headerless CSV cost matrix with
one row per group 1 subject and one column per group 2 subject.

Supported metrics: precomputed, ` + fmt.Sprint(distance.Names()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, a, f, args[0], args[1])
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.metric, "metric", "m", "", "distance metric (default from config)")
	fl.StringVar(&f.costs, "costs", "", "precomputed cost matrix CSV")
	fl.StringVar(&f.idColumn, "id-column", "", "identifier column name (default from config)")
	fl.StringVar(&f.rounding, "rounding", "", "truncate or nearest (default from config)")
	fl.BoolVar(&f.rejectEmpty, "reject-empty", false, "fail when a group is empty")
	fl.StringVarP(&f.format, "format", "f", "table", "output format: table, csv, json")

	return cmd
}

func runMatch(cmd *cobra.Command, a *app, f *matchFlags, path1, path2 string) error {
	cfg := *a.cfg
	if cmd.Flags().Changed("metric") {
		cfg.Metric = f.metric
	}
	if cmd.Flags().Changed("id-column") {
		cfg.IDColumn = f.idColumn
	}
	if cmd.Flags().Changed("rounding") {
		cfg.Rounding = f.rounding
	}
	if f.rejectEmpty {
		cfg.RejectEmpty = true
	}
	if f.costs != "" {
		if !cmd.Flags().Changed("metric") {
			cfg.Metric = string(distance.Precomputed)
		} else if !distance.IsPrecomputed(distance.Metric(cfg.Metric)) {
			return fmt.Errorf("--costs is only accepted with --metric %s, got %q", distance.Precomputed, cfg.Metric)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	render, err := renderer(f.format)
	if err != nil {
		return err
	}

	g1, err := readGroup(path1, cfg.IDColumn)
	if err != nil {
		return err
	}
	g2, err := readGroup(path2, cfg.IDColumn)
	if err != nil {
		return err
	}
	var cost *matrix.Cost
	if f.costs != "" {
		if cost, err = readCost(f.costs); err != nil {
			return err
		}
	}

	opts := cfg.MatchOptions(a.logger)
	if a.verbose {
		opts = append(opts, match.WithVerbose())
	}
	m, err := match.Match(cmd.Context(), g1, g2, distance.Metric(cfg.Metric), cost, opts...)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), m)
}

func readGroup(path, idColumn string) (match.Group, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, _, err := dataset.ReadGroup(fh, idColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func readCost(path string) (*matrix.Cost, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	c, err := dataset.ReadCost(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}
