package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/catbot-team/catbot/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// runCmd executes the root command with args and returns stdout.
// HOME is redirected so no user config is read.
func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CATBOT_CONFIG", "")

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestViewCmd_DefaultIsCheckIn(t *testing.T) {
	out, err := runCmd(t, testApp(t), "view")
	require.NoError(t, err)

	assert.Contains(t, out, "CatBot")
	assertOnlyFragment(t, out, domain.TabCheckIn)
}

func TestViewCmd_EachTab(t *testing.T) {
	for _, tab := range domain.AllTabs() {
		t.Run(string(tab), func(t *testing.T) {
			out, err := runCmd(t, testApp(t), "view", string(tab))
			require.NoError(t, err)
			assertOnlyFragment(t, out, tab)
		})
	}
}

func TestViewCmd_AcceptsLabel(t *testing.T) {
	out, err := runCmd(t, testApp(t), "view", "Check In")
	require.NoError(t, err)
	assertOnlyFragment(t, out, domain.TabCheckIn)
}

func TestViewCmd_Focus(t *testing.T) {
	out, err := runCmd(t, testApp(t), "view", "focus")
	require.NoError(t, err)
	assert.Contains(t, out, "Focus Mode")
	assert.Contains(t, out, "25:00")
}

func TestViewCmd_UnknownTab(t *testing.T) {
	_, err := runCmd(t, testApp(t), "view", "settings")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownTab))
}

func TestViewCmd_Width(t *testing.T) {
	out, err := runCmd(t, testApp(t), "view", "--width", "50")
	require.NoError(t, err)

	first := strings.SplitN(out, "\n", 2)[0]
	assert.Equal(t, 50, lipgloss.Width(first))
	assert.Contains(t, first, "Settings")
}

func TestTabsCmd(t *testing.T) {
	out, err := runCmd(t, testApp(t), "tabs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "check-in")
	assert.Contains(t, lines[0], "Check In")
	assert.True(t, strings.HasPrefix(lines[3], "4"))
	assert.Contains(t, lines[3], "breaks")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, testApp(t), "version")
	require.NoError(t, err)
	assert.Equal(t, "catbot test\n", out)
}

func TestRootCmd_NonInteractivePrintsStatic(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }
	app.RunProgram = func(tea.Model, ...tea.ProgramOption) error {
		t.Fatal("tui must not start without a terminal")
		return nil
	}

	out, err := runCmd(t, app)
	require.NoError(t, err)
	assertOnlyFragment(t, out, domain.TabCheckIn)
}

func TestRootCmd_InteractiveRunsProgram(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	var got tea.Model
	var nOpts int
	app.RunProgram = func(m tea.Model, opts ...tea.ProgramOption) error {
		got = m
		nOpts = len(opts)
		return nil
	}

	_, err := runCmd(t, app)
	require.NoError(t, err)

	m, ok := got.(appModel)
	require.True(t, ok)
	assert.Equal(t, domain.TabCheckIn, m.activeTab)
	assert.Equal(t, 2, nOpts, "alt screen and mouse")
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	var nOpts int
	app.RunProgram = func(m tea.Model, opts ...tea.ProgramOption) error {
		nOpts = len(opts)
		return nil
	}

	_, err := runCmd(t, app, "--no-mouse")
	require.NoError(t, err)
	assert.False(t, app.Config.UI.Mouse)
	assert.Equal(t, 1, nOpts)

	_, err = runCmd(t, app, "--no-alt-screen")
	require.NoError(t, err)
	assert.False(t, app.Config.UI.AltScreen)
	assert.Equal(t, 0, nOpts)
}

func TestRootCmd_ProgramErrorIsWrapped(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	boom := errors.New("boom")
	app.RunProgram = func(tea.Model, ...tea.ProgramOption) error { return boom }

	_, err := runCmd(t, app)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "running tui")
}

func TestRootCmd_LogFileFlag(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.RunProgram = func(tea.Model, ...tea.ProgramOption) error { return nil }
	logPath := filepath.Join(t.TempDir(), "catbot.log")

	_, err := runCmd(t, app, "--log-file", logPath, "--debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", app.Config.Log.Level)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting tui")
	assert.Contains(t, string(data), "tui stopped")
}

func TestRootCmd_BadConfigFails(t *testing.T) {
	_, err := runCmd(t, testApp(t), "--config", filepath.Join(t.TempDir(), "missing.toml"), "tabs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

// syncCountingCore records how often the logger is flushed.
type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return c.Core.Sync()
}

func TestRunTUI_SyncsLoggerOnError(t *testing.T) {
	inner, logs := observer.New(zapcore.InfoLevel)
	core := &syncCountingCore{Core: inner}

	app := testApp(t)
	app.Logger = zap.New(core)
	app.RunProgram = func(tea.Model, ...tea.ProgramOption) error { return errors.New("boom") }

	require.Error(t, app.runTUI())
	assert.Equal(t, 1, logs.FilterMessage("tui exited with error").Len())
	assert.GreaterOrEqual(t, core.syncs, 1)
}
