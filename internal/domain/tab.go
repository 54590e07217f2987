package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tab identifies which content fragment the UI is showing.
type Tab string

const (
	TabCheckIn Tab = "check-in"
	TabFocus   Tab = "focus"
	TabIdeas   Tab = "ideas"
	TabBreaks  Tab = "breaks"
)

// DefaultTab is the tab shown when the UI starts.
const DefaultTab = TabCheckIn

// ErrUnknownTab is returned by ParseTab for input that names no tab.
var ErrUnknownTab = errors.New("unknown tab")

var allTabs = [...]Tab{TabCheckIn, TabFocus, TabIdeas, TabBreaks}

// AllTabs returns every tab in display order.
func AllTabs() []Tab {
	tabs := allTabs
	return tabs[:]
}

// Valid reports whether t is one of the four tabs.
func (t Tab) Valid() bool {
	return t.Index() >= 0
}

// Index returns the position of t in display order, or -1.
func (t Tab) Index() int {
	for i, tab := range allTabs {
		if tab == t {
			return i
		}
	}
	return -1
}

// Next returns the tab after t, wrapping around at the end.
func (t Tab) Next() Tab {
	return allTabs[(t.Index()+1)%len(allTabs)]
}

// Prev returns the tab before t, wrapping around at the start.
func (t Tab) Prev() Tab {
	i := t.Index()
	if i <= 0 {
		return allTabs[len(allTabs)-1]
	}
	return allTabs[i-1]
}

// Label is the identifier with dashes turned into spaces ("check in").
func (t Tab) Label() string {
	return strings.Join(strings.Split(string(t), "-"), " ")
}

// Title is the label with every word capitalised ("Check In").
func (t Tab) Title() string {
	return cases.Title(language.English).String(t.Label())
}

func (t Tab) String() string {
	return string(t)
}

// ParseTab resolves an identifier ("check-in") or label ("check in").
func ParseTab(s string) (Tab, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, tab := range allTabs {
		if norm == string(tab) || norm == tab.Label() {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}
