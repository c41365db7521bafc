package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxVisibleResults = 8

var (
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// runModel renders per-file progress for compact/eliminate runs.
type runModel struct {
	operation string
	total     int
	done      int
	current   string
	results   []string
	summary   string
	finished  bool
	bar       progress.Model
}

func newRunModel(operation string, total int) runModel {
	return runModel{
		operation: operation,
		total:     total,
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

func (r runModel) Init() tea.Cmd {
	return nil
}

func (r runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return r, tea.Quit
		}

	case tea.WindowSizeMsg:
		r.bar.Width = msg.Width - 4

	case fileStartMsg:
		r.current = msg.path

	case fileResultMsg:
		r.done++
		r.current = ""
		r.results = append(r.results, formatResultLine(msg))

		if len(r.results) > maxVisibleResults {
			r.results = r.results[len(r.results)-maxVisibleResults:]
		}

	case summaryMsg:
		suffix := ""
		if msg.dryRun {
			suffix = " (dry run, nothing written)"
		}

		r.summary = fmt.Sprintf("%s: error violations %d -> %d%s", msg.operation, msg.before, msg.after, suffix)

	case doneMsg:
		r.finished = true

		return r, tea.Quit
	}

	return r, nil
}

func (r runModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %d/%d\n", r.operation, r.done, r.total))

	percent := 1.0
	if r.total > 0 {
		percent = float64(r.done) / float64(r.total)
	}

	b.WriteString(r.bar.ViewAs(percent))
	b.WriteString("\n")

	for _, line := range r.results {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if r.current != "" {
		b.WriteString(currentStyle.Render("processing " + r.current))
		b.WriteString("\n")
	}

	if r.summary != "" {
		b.WriteString(summaryStyle.Render(r.summary))
		b.WriteString("\n")
	}

	return b.String()
}

func formatResultLine(msg fileResultMsg) string {
	if msg.err != "" {
		return fmt.Sprintf("%s %s: %s", failStyle.Render("fail"), msg.path, msg.err)
	}

	return fmt.Sprintf("%s %s: %d inserted", okStyle.Render("ok"), msg.path, msg.inserted)
}
