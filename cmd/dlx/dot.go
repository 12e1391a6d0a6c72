package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tveness/dlx-go/dlx"
	"github.com/tveness/dlx-go/internal/puzzlecfg"
)

func newDotCmd() *cobra.Command {
	var out string
	var svg bool

	cmd := &cobra.Command{
		Use:   "dot <config.toml>",
		Short: "Export a puzzle's exact-cover matrix as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := puzzlecfg.Load(args[0])
			if err != nil {
				return err
			}

			r, err := newRunner(cfg)
			if err != nil {
				return err
			}

			dotSrc := r.engine.DOT()
			if svg {
				svgBytes, err := dlx.RenderSVG(dotSrc)
				if err != nil {
					return err
				}
				return writeOutput(out, svgBytes)
			}

			return writeOutput(out, []byte(dotSrc))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render to SVG instead of raw DOT")

	return cmd
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		if err == nil {
			fmt.Println()
		}
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
