package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match-master/internal/config"
	"github.com/vovakirdan/match-master/internal/core"
	"github.com/vovakirdan/match-master/internal/games/match3"
)

// MenuChoice identifies what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScoreboard
	ChoiceQuit
)

// menuEntries are the main menu lines, in display order.
var menuEntries = []string{
	"Play",
	"Select level...",
	"High scores",
	"Quit",
}

const (
	entryPlay = iota
	entrySelectLevel
	entryScores
	entryQuit
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu and level selector.
type MenuModel struct {
	levels        []config.LevelConfig
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	choice        MenuChoice
	level         int // 1-based start level, 0 for the first
}

// NewMenuModel creates a new menu model for the given level table.
func NewMenuModel(levels []config.LevelConfig, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		levels:    levels,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.choice = ChoiceScoreboard
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case entryPlay:
			m.choice = ChoicePlay
			m.level = 0
			return m, tea.Quit
		case entrySelectLevel:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		case entryScores:
			m.choice = ChoiceScoreboard
			return m, tea.Quit
		case entryQuit:
			m.choice = ChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.choice = ChoiceQuit
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choice = ChoicePlay
		m.level = m.levelCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("M A T C H   M A S T E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Swap tiles, line up three, chase the target score", m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		b.WriteString(m.menuLine(entry, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		line := fmt.Sprintf("%d. %s (target %d, %d moves, %s)",
			i+1, l.Name, l.TargetScore, l.MaxMoves, match3.FormatTime(l.TimeLimit))
		b.WriteString(m.menuLine(line, i == m.levelCursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

func (m MenuModel) menuLine(text string, selected bool) string {
	if selected {
		return menuCursorStyle.Render(centerText("> "+text, m.width))
	}
	return centerText("  "+text, m.width)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Level  int // 1-based start level, 0 for the first
	Config core.RuntimeConfig
}

// Result returns the current selection.
func (m MenuModel) Result() MenuResult {
	choice := m.choice
	if choice == ChoiceNone {
		choice = ChoiceQuit
	}
	return MenuResult{Choice: choice, Level: m.level, Config: m.config}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(levels []config.LevelConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(levels, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return m.Result(), nil
}
