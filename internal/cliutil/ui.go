// Package cliutil holds small presentation helpers shared by the dlx
// command's subcommands: a charmbracelet/log logger factory and a handful
// of lipgloss styles for status output.
package cliutil

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
	colorWhite = lipgloss.Color("255")

	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleError   = lipgloss.NewStyle().Foreground(colorRed)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
)

// NewLogger builds a timestamped charmbracelet/log logger writing to w at
// the given level, matching the format the dlx CLI uses everywhere.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
