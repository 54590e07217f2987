package cli

import (
	"testing"
	"time"

	"github.com/catbot-team/catbot/internal/domain"
	"github.com/catbot-team/catbot/internal/teatest"
)

// morning is a fixed clock before noon so the greeting is deterministic.
var morning = time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)

// testApp returns an App with a fixed clock and no logging.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Version: "test",
		Now:     func() time.Time { return morning },
	}
}

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sizes the terminal and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ClickTab presses the left mouse button in the middle of tab's label.
func (d *TestDriver) ClickTab(tab domain.Tab) {
	d.T.Helper()
	for _, s := range tabLayout() {
		if s.tab == tab {
			d.Click((s.start+s.end)/2, tabBarRow)
			return
		}
	}
	d.T.Fatalf("tab %q not in layout", tab)
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveTab returns the model's current tab.
func (d *TestDriver) ActiveTab() domain.Tab {
	return d.appModel().activeTab
}

// IsQuitting reports whether the app signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
