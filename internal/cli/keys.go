package cli

import (
	"github.com/catbot-team/catbot/internal/domain"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists every binding the TUI reacts to. It satisfies help.KeyMap.
type keyMap struct {
	Select key.Binding
	Next   key.Binding
	Prev   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Select: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to tab")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next tab")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/shift+tab", "prev tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}

// tabForKey maps the digit keys to tabs in display order.
func tabForKey(s string) (domain.Tab, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return "", false
	}
	tabs := domain.AllTabs()
	i := int(s[0] - '1')
	if i >= len(tabs) {
		return "", false
	}
	return tabs[i], true
}
