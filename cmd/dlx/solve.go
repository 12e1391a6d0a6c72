package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tveness/dlx-go/internal/cliutil"
	"github.com/tveness/dlx-go/internal/diagnostics"
	"github.com/tveness/dlx-go/internal/puzzlecfg"
)

func newSolveCmd() *cobra.Command {
	var limit int
	var diag bool

	cmd := &cobra.Command{
		Use:   "solve <config.toml>",
		Short: "Solve a puzzle described by a TOML config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if diag {
				diagnostics.Enable()
			}

			cfg, err := puzzlecfg.Load(args[0])
			if err != nil {
				return err
			}
			if limit > 0 {
				cfg.Limit = limit
			}

			r, err := newRunner(cfg)
			if err != nil {
				return err
			}

			logger.Debug("built puzzle", "kind", r.kind)
			run := diagnostics.NewRun(r.kind)

			count := 0
			for {
				if cfg.Limit > 0 && count >= cfg.Limit {
					break
				}
				sol, ok := r.next()
				if !ok {
					break
				}
				count++
				fmt.Println(cliutil.StyleTitle.Render(fmt.Sprintf("solution %d", count)))
				fmt.Println(sol)
				fmt.Println()
			}

			stats := r.engine.Stats()
			run.Finish(count, stats.NodesVisited, stats.Backtracks)

			logger.Info("done", "solutions", count, "nodes_visited", stats.NodesVisited, "backtracks", stats.Backtracks)
			if count == 0 {
				fmt.Println(cliutil.StyleDim.Render("no solutions"))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many solutions (0 = unlimited)")
	cmd.Flags().BoolVar(&diag, "diag", false, "emit structured run diagnostics (zerolog JSON) to stderr")

	return cmd
}
