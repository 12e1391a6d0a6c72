package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tveness/dlx-go/internal/cliutil"
	"github.com/tveness/dlx-go/internal/puzzlecfg"
)

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui <config.toml>",
		Short: "Step through a puzzle's solutions one at a time",
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

			_, err = tea.NewProgram(newStepModel(r)).Run()
			return err
		},
	}
	return cmd
}

// stepModel shows one solution per screen; every "next" keypress is one
// call into the engine's single suspension point (NextSolution), so the
// model never holds more than the current solution text.
type stepModel struct {
	r         *runner
	current   string
	count     int
	exhausted bool
	err       error
}

func newStepModel(r *runner) stepModel {
	return stepModel{r: r}
}

func (m stepModel) Init() tea.Cmd {
	return m.advance
}

func (m stepModel) advance() tea.Msg {
	sol, ok := m.r.next()
	return stepMsg{sol: sol, ok: ok}
}

type stepMsg struct {
	sol string
	ok  bool
}

func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", " ", "enter":
			if m.exhausted {
				return m, nil
			}
			return m, m.advance
		}
	case stepMsg:
		if !msg.ok {
			m.exhausted = true
			return m, nil
		}
		m.count++
		m.current = msg.sol
	}
	return m, nil
}

func (m stepModel) View() string {
	var b strings.Builder

	b.WriteString(cliutil.StyleTitle.Render(fmt.Sprintf("%s — solution %d", m.r.kind, m.count)))
	b.WriteString("\n\n")

	if m.exhausted {
		b.WriteString(cliutil.StyleDim.Render("no more solutions"))
	} else {
		b.WriteString(lipgloss.NewStyle().Render(m.current))
	}

	b.WriteString("\n\n")
	b.WriteString(cliutil.StyleDim.Render("n/space next  q quit"))
	return b.String()
}
