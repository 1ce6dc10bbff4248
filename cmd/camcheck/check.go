package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitewise/camcheck/domain/coverage"
	"github.com/sitewise/camcheck/domain/plan"
)

func checkCmd() *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "check <plan.yaml>",
		Short: "Run a one-shot coverage check against a site plan",
		Long: `Run a one-shot coverage check against a site plan.

The plan file describes the target envelope and the camera fleet:

  target:
    distance: {min: 1, max: 20}
    light: {min: 0, max: 100}
  cameras:
    - id: cam-entrance
      distance: {min: 0, max: 8}
      light: {min: 0, max: 100}

The command exits non-zero when the plan is malformed or coverage is
incomplete. The check is not recorded in history; use the HTTP API or
MCP server for that.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], showStats)
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "Print grid statistics")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, showStats bool) error {
	target, cameras, err := plan.Load(path)
	if err != nil {
		return err
	}

	result := coverage.Check(target, cameras)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, result.Message)
	for _, region := range result.Uncovered {
		fmt.Fprintf(out, "  uncovered: %s\n", region)
	}

	if showStats {
		fmt.Fprintf(out, "cameras: %d\n", result.Stats.Cameras)
		fmt.Fprintf(out, "boundaries: %d distance, %d light\n",
			result.Stats.DistanceBoundaries, result.Stats.LightBoundaries)
		fmt.Fprintf(out, "cells: %d examined, %d uncovered\n",
			result.Stats.CellsExamined, result.Stats.UncoveredCells)
		fmt.Fprintf(out, "covered: %d%%\n", result.Stats.CoveragePercent)
	}

	if !result.Sufficient {
		cmd.SilenceErrors = true
		return fmt.Errorf("coverage insufficient")
	}
	return nil
}
