// Package diagnostics logs per-run search statistics to a zerolog sink,
// tagged with a google/uuid correlation ID so repeated runs (e.g. a batch
// of solve invocations) can be told apart in aggregated logs. It is
// deliberately separate from the charmbracelet/log output the CLI commands
// print to the terminal: this is a structured, machine-parseable stream
// meant for a log collector, not for the person watching the terminal.
package diagnostics

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(io.Discard).With().Timestamp().Logger()
}

// SetOutput redirects the diagnostics stream; by default it is discarded,
// since most invocations of the dlx CLI have no log collector listening.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Enable points the diagnostics stream at stderr in newline-delimited JSON.
func Enable() {
	SetOutput(os.Stderr)
}

// Run is one correlation-tagged search invocation: call Finish once the
// engine has stopped producing solutions.
type Run struct {
	id   uuid.UUID
	kind string
}

// NewRun mints a new correlation ID for a puzzle kind and logs its start.
func NewRun(kind string) Run {
	r := Run{id: uuid.New(), kind: kind}
	logger.Info().Str("run_id", r.id.String()).Str("kind", kind).Msg("run started")
	return r
}

// Finish logs the run's outcome: how many solutions were emitted and how
// much search effort (nodes visited, backtracks) it took to find them.
func (r Run) Finish(solutions, nodesVisited, backtracks int) {
	logger.Info().
		Str("run_id", r.id.String()).
		Str("kind", r.kind).
		Int("solutions", solutions).
		Int("nodes_visited", nodesVisited).
		Int("backtracks", backtracks).
		Msg("run finished")
}
