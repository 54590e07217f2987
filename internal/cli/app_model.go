package cli

import (
	"strings"
	"time"

	"github.com/catbot-team/catbot/internal/cli/formatter"
	"github.com/catbot-team/catbot/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	appTitle    = "🐱 CatBot"
	footerText  = "Made with ❤️ by CatBot Team"
	settingsBtn = "Settings"

	// defaultWidth is used until the first WindowSizeMsg arrives and for
	// static renders outside a terminal.
	defaultWidth = 80
)

// appModel is the root bubbletea Model for the TUI.
// Its only state is the active tab; everything else is layout.
type appModel struct {
	activeTab domain.Tab

	width  int
	height int

	keys keyMap
	help help.Model

	now      func() time.Time
	log      *zap.Logger
	quitting bool
}

func newAppModel(app *App) appModel {
	h := help.New()
	h.Styles.ShortKey = formatter.StylePrimary
	h.Styles.FullKey = formatter.StylePrimary

	m := appModel{
		activeTab: domain.DefaultTab,
		keys:      defaultKeyMap(),
		help:      h,
		now:       time.Now,
		log:       zap.NewNop(),
	}
	if app != nil {
		if app.Now != nil {
			m.now = app.Now
		}
		if app.Logger != nil {
			m.log = app.Logger
		}
	}
	return m
}

// selectTab replaces the active tab. Selecting the current tab is a no-op
// in effect.
func (m *appModel) selectTab(tab domain.Tab) {
	if tab != m.activeTab {
		m.log.Debug("tab selected",
			zap.Stringer("from", m.activeTab),
			zap.Stringer("to", tab))
	}
	m.activeTab = tab
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		if tab, ok := tabForKey(msg.String()); ok {
			m.selectTab(tab)
		}

	case key.Matches(msg, m.keys.Next):
		m.selectTab(m.activeTab.Next())

	case key.Matches(msg, m.keys.Prev):
		m.selectTab(m.activeTab.Prev())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse selects the tab under a left-button press on the tab bar.
func (m *appModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Y != tabBarRow {
		return
	}
	if tab, ok := tabAt(msg.X); ok {
		m.selectTab(tab)
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	result := m.render(true)

	if m.height <= 0 {
		return result
	}

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	lines := strings.Count(result, "\n") + 1
	if lines < m.height {
		return result + strings.Repeat("\n", m.height-lines)
	}

	// The renderer keeps the last height lines, which would push the
	// header and tab bar off screen. Cut from the bottom instead so the
	// tab bar stays on tabBarRow for mouse hit-testing.
	if lines > m.height {
		return strings.Join(strings.Split(result, "\n")[:m.height], "\n")
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

// render lays out the page. The status bar is omitted for static output.
func (m appModel) render(withStatus bool) string {
	width := m.contentWidth()

	sections := []string{
		m.renderHeader(width),
		renderTabBar(m.activeTab, width),
		"",
		renderFragment(m.activeTab, m.now(), width),
		"",
		m.renderFooter(width),
	}
	if withStatus {
		sections = append(sections, m.help.View(m.keys))
	}
	return strings.Join(sections, "\n")
}

func (m appModel) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m appModel) renderHeader(width int) string {
	title := formatter.StyleTitle.Render(appTitle)
	line := formatter.Spread(" "+title, formatter.Button(settingsBtn)+" ", width)
	return line + "\n" + formatter.Rule(width)
}

func (m appModel) renderFooter(width int) string {
	return formatter.Rule(width) + "\n" + formatter.Center(formatter.Dim(footerText), width)
}
