package cli

import (
	"strings"

	"github.com/catbot-team/catbot/internal/cli/formatter"
	"github.com/catbot-team/catbot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Screen rows are fixed: header (0), separator (1), tab labels (2),
// active-tab indicator (3). Mouse hit-testing relies on this.
const (
	tabBarRow    = 2
	tabBarIndent = 2
	tabGap       = 4
)

// tabSpan is the half-open column range [start, end) a tab label occupies.
type tabSpan struct {
	tab        domain.Tab
	start, end int
}

func tabLayout() []tabSpan {
	tabs := domain.AllTabs()
	spans := make([]tabSpan, 0, len(tabs))
	x := tabBarIndent
	for _, tab := range tabs {
		w := lipgloss.Width(tab.Title())
		spans = append(spans, tabSpan{tab: tab, start: x, end: x + w})
		x += w + tabGap
	}
	return spans
}

// tabAt returns the tab whose label covers column x.
func tabAt(x int) (domain.Tab, bool) {
	for _, s := range tabLayout() {
		if x >= s.start && x < s.end {
			return s.tab, true
		}
	}
	return "", false
}

// renderTabBar draws the label row and the indicator row beneath it.
func renderTabBar(active domain.Tab, width int) string {
	var labels, marks strings.Builder
	labels.WriteString(strings.Repeat(" ", tabBarIndent))
	marks.WriteString(formatter.StyleBorder.Render(strings.Repeat("─", tabBarIndent)))

	used := tabBarIndent
	for i, s := range tabLayout() {
		if i > 0 {
			labels.WriteString(strings.Repeat(" ", tabGap))
			marks.WriteString(formatter.StyleBorder.Render(strings.Repeat("─", tabGap)))
			used += tabGap
		}
		w := s.end - s.start
		if s.tab == active {
			labels.WriteString(formatter.StyleTabActive.Render(s.tab.Title()))
			marks.WriteString(formatter.StyleTabActive.Render(strings.Repeat("━", w)))
		} else {
			labels.WriteString(formatter.StyleTabInactive.Render(s.tab.Title()))
			marks.WriteString(formatter.StyleBorder.Render(strings.Repeat("─", w)))
		}
		used += w
	}
	if rest := width - used; rest > 0 {
		marks.WriteString(formatter.StyleBorder.Render(strings.Repeat("─", rest)))
	}

	return labels.String() + "\n" + marks.String()
}
