package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate busy indicator shown while the guard
// scans its targets.
type Spinner interface {
	// SetTitle updates the spinner title.
	SetTitle(title string)

	// Stop halts the spinner and clears its line.
	Stop()
}

// NewSpinner creates a spinner appropriate for the environment: an
// animated bubbles spinner on a TTY, a single log line otherwise.
func NewSpinner(theme *Theme, hm *HeadlessManager, title string) Spinner {
	if hm.IsHeadless() || theme.NoColor {
		return newHeadlessSpinner(title, os.Stdout)
	}
	return newInteractiveSpinner(theme, title)
}

// --- interactive spinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary.GetForeground())
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title))

	s := &interactiveSpinner{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- headless spinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	writer io.Writer
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	fmt.Fprintf(w, "... %s\n", title)
	return &headlessSpinner{writer: w}
}

// SetTitle prints the new title as a log line.
func (s *headlessSpinner) SetTitle(title string) {
	fmt.Fprintf(s.writer, "... %s\n", title)
}

// Stop is a no-op in headless mode.
func (s *headlessSpinner) Stop() {}
