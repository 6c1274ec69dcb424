package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/errors"
	"github.com/wippyai/spirv-tables/grammar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	capStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	blockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	tabOpcodes = iota
	tabOperands
	tabExtInsts
	numTabs
)

var tabNames = [numTabs]string{"Opcodes", "Operands", "Extended"}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

type interactiveModel struct {
	err      error
	tables   *grammar.Tables
	cfg      config
	tabs     [numTabs][]entry
	visible  []entry
	filter   textinput.Model
	declared grammar.Declared
	tab      int
	selected int
	offset   int
	height   int
	state    modelState
	target   env.Target
}

type loadedMsg struct {
	err      error
	tables   *grammar.Tables
	declared grammar.Declared
	target   env.Target
}

func newInteractiveModel(cfg config) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter by name"
	ti.Width = 40
	return &interactiveModel{
		cfg:    cfg,
		filter: ti,
		height: 20,
		state:  stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadTables
}

func (m *interactiveModel) loadTables() tea.Msg {
	ctx, declared, err := newContext(m.cfg)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{tables: ctx.Tables(), declared: declared, target: ctx.Target()}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, tabs, blank lines and help take 8 rows
		m.height = max(msg.Height-8, 1)
		m.scroll()

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tables = msg.tables
		m.declared = msg.declared
		m.target = msg.target
		m.tabs[tabOpcodes] = opcodeEntries(m.tables, m.declared)
		m.tabs[tabOperands] = operandEntries(m.tables, grammar.OperandNone, m.declared)
		m.tabs[tabExtInsts] = extInstEntries(m.tables, "", m.declared)
		m.applyFilter()

	case tea.KeyMsg:
		if m.state == stateFilter {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
				m.scroll()
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
				m.scroll()
			}

		case "tab", "right", "l":
			if m.state == stateBrowse {
				m.switchTab(1)
			}

		case "shift+tab", "left", "h":
			if m.state == stateBrowse {
				m.switchTab(numTabs - 1)
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
			} else if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter()
			}
		}
	}
	return m, nil
}

func (m *interactiveModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.filter.Blur()
		m.state = stateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) switchTab(step int) {
	m.tab = (m.tab + step) % numTabs
	m.applyFilter()
}

// applyFilter recomputes the visible rows of the current tab.
func (m *interactiveModel) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for _, e := range m.tabs[m.tab] {
		if needle == "" || strings.Contains(strings.ToLower(e.name), needle) ||
			strings.Contains(strings.ToLower(e.kind), needle) {
			m.visible = append(m.visible, e)
		}
	}
	m.selected = 0
	m.offset = 0
}

// scroll keeps the selected row inside the window.
func (m *interactiveModel) scroll() {
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.tables == nil {
		return "Loading tables..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("SPIR-V Tables"))
	b.WriteString(" ")
	b.WriteString(m.target.String())
	b.WriteString(" ")
	b.WriteString(capStyle.Render(formatCaps(m.declared.Capabilities) + " " + formatExts(m.declared.Extensions)))
	b.WriteString("\n\n")

	for i, name := range tabNames {
		label := fmt.Sprintf("%s (%d)", name, len(m.tabs[i]))
		if i == m.tab {
			label = activeTabStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("   ")
	}
	b.WriteString("\n")
	if m.state == stateFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
	}
	b.WriteString("\n")

	switch m.state {
	case stateBrowse, stateFilter:
		end := min(m.offset+m.height, len(m.visible))
		for i := m.offset; i < end; i++ {
			line := m.formatRow(m.visible[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("  no matches\n"))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • tab switch table • / filter • enter details • q quit"))

	case stateDetail:
		var detail strings.Builder
		describe(&detail, m.visible[m.selected])
		b.WriteString(detail.String())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatRow(e entry) string {
	name := nameStyle.Render(e.name)
	if !e.allowed {
		name = blockedStyle.Render(e.name)
	}
	row := fmt.Sprintf("%-6d %s", e.code, name)
	if m.tab != tabOpcodes {
		row = fmt.Sprintf("%-24s %s", e.kind, row)
	}
	if !e.caps.IsEmpty() {
		row += " " + capStyle.Render(formatCaps(e.caps))
	}
	return row
}

func runInteractive(cfg config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.InvalidInput(errors.PhaseConfig, "interactive mode needs a terminal on stdout")
	}
	p := tea.NewProgram(newInteractiveModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
