package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nxtool.dev/cli/internal/infrastructure/serialport"
)

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	pickerDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// portPickerModel is a minimal list selector over matched serial ports.
type portPickerModel struct {
	ports  []serialport.Port
	cursor int
	chosen string
}

func (m portPickerModel) Init() tea.Cmd {
	return nil
}

func (m portPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ports)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.ports[m.cursor].Device
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m portPickerModel) View() string {
	s := pickerTitleStyle.Render("Select a serial port") + "\n"
	for i, p := range m.ports {
		cursor := "  "
		if i == m.cursor {
			cursor = pickerCursorStyle.Render("> ")
		}
		desc := p.Description
		if desc == "" {
			desc = p.VIDPID
		}
		s += fmt.Sprintf("%s%s %s\n", cursor, p.Device, pickerDimStyle.Render(desc))
	}
	s += pickerDimStyle.Render("enter: select, q: cancel") + "\n"
	return s
}

// pickPort runs the interactive picker and returns the chosen device.
func pickPort(ctx context.Context, ports []serialport.Port) (string, error) {
	program := tea.NewProgram(portPickerModel{ports: ports}, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("port selection: %w", err)
	}
	m, ok := final.(portPickerModel)
	if !ok || m.chosen == "" {
		return "", fmt.Errorf("no serial port selected")
	}
	return m.chosen, nil
}
