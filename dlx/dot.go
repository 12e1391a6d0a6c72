package dlx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// DOT renders the engine's current live matrix as a Graphviz DOT bipartite
// graph: one node per uncovered item, one node per option that still has at
// least one uncovered cell, and an edge for every live cell between them.
// Covered items, and options with none of their cells left, are omitted —
// the picture always reflects exactly what chooseColumn and cover currently
// see, which makes it useful for stepping through a search interactively.
//
// The resulting string can be handed to [RenderSVG], or to any other
// Graphviz frontend that accepts DOT source.
func (e *Engine[L]) DOT() string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for c := e.right[rootIndex]; c != rootIndex; c = e.right[c] {
		fmt.Fprintf(&buf, "  %q [fillcolor=lightyellow, label=%q];\n", itemNodeID(c), fmt.Sprintf("item %d\n(%d)", c, e.size[c]))
	}
	buf.WriteString("\n")

	seen := make(map[int]bool)
	for c := e.right[rootIndex]; c != rootIndex; c = e.right[c] {
		for i := e.down[c]; i != c; i = e.down[i] {
			opt := e.option[i]
			if !seen[opt] {
				seen[opt] = true
				fmt.Fprintf(&buf, "  %q [fillcolor=lightblue, label=%q];\n", optionNodeID(opt), fmt.Sprintf("%v", e.labels[opt]))
			}
			fmt.Fprintf(&buf, "  %q -- %q;\n", itemNodeID(c), optionNodeID(opt))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func itemNodeID(c int) string   { return fmt.Sprintf("item%d", c) }
func optionNodeID(o int) string { return fmt.Sprintf("opt%d", o) }

// RenderSVG renders a DOT graph produced by [Engine.DOT] to SVG bytes using
// Graphviz, which go-graphviz runs in-process (as WebAssembly); no system
// graphviz installation is used.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("dlx: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("dlx: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("dlx: render svg: %w", err)
	}

	return buf.Bytes(), nil
}
