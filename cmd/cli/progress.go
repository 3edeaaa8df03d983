package main

import (
	"context"
	"strings"

	progressdemo "showcase/domain/progress"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxBarWidth = 60

// tickMsg carries one step of the demo into the program
type tickMsg progressdemo.Tick

// doneMsg is sent once the demo stops, err is nil on completion
type doneMsg struct {
	err error
}

type progressModel struct {
	bar     progress.Model
	percent float64
	done    bool
	err     error
}

func newProgressModel() progressModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = maxBarWidth
	return progressModel{bar: bar}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		if m.bar.Width > maxBarWidth {
			m.bar.Width = maxBarWidth
		}
	case tickMsg:
		m.percent = msg.Percent / 100
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("🎯 Progress Demo") + "\n")
	s.WriteString(m.bar.ViewAs(m.percent) + "\n\n")
	switch {
	case m.done && m.err == nil:
		s.WriteString(successStyle.Render(progressdemo.CompletedMessage) + "\n")
	case m.done:
		s.WriteString(errorStyle.Render("Stopped: "+m.err.Error()) + "\n")
	default:
		s.WriteString(helpStyle.Render("q to quit") + "\n")
	}
	return s.String()
}

// runProgress drives the demo in the background and renders it until it
// completes or the user quits
func runProgress(ctx context.Context, demo progressdemo.Demo) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(), tea.WithContext(ctx))
	go func() {
		err := demo.Run(ctx, func(tick progressdemo.Tick) error {
			p.Send(tickMsg(tick))
			return nil
		})
		p.Send(doneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(progressModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
