package main

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tveness/dlx-go/internal/cliutil"
)

type loggerKey struct{}

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*charmlog.Logger); ok {
		return l
	}
	return cliutil.NewLogger(os.Stderr, charmlog.InfoLevel)
}

func rootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "dlx",
		Short:        "dlx solves exact-cover puzzles with Dancing Links",
		Long:         "dlx is a command-line front end to a Dancing Links / Algorithm X engine: it solves Sudoku, N-Queens and Aztec-diamond-tiling puzzles described by a TOML config file.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), cliutil.NewLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newTUICmd())

	return root
}
