package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counterModel counts key presses and echoes the last click.
type counterModel struct {
	presses int
	bumps   int
	clickX  int
	clickY  int
	width   int
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return bumpMsg{} }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bumpMsg:
		m.bumps++
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.MouseMsg:
		m.clickX, m.clickY = msg.X, msg.Y
	case tea.KeyMsg:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.presses++
		if msg.String() == "b" {
			return m, tea.Batch(
				func() tea.Msg { return bumpMsg{} },
				nil,
				func() tea.Msg { return bumpMsg{} },
			)
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return fmt.Sprintf("presses=%d bumps=%d click=%d,%d width=%d", m.presses, m.bumps, m.clickX, m.clickY, m.width)
}

func TestDriver_InitAndSize(t *testing.T) {
	d := New(t, counterModel{}, WithSize(90, 20))
	d.DrainInit()

	assert.Equal(t, "presses=0 bumps=1 click=0,0 width=90", d.View())
}

func TestDriver_BatchIsDrained(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('b')

	assert.Equal(t, "presses=1 bumps=2 click=0,0 width=0", d.View())
}

func TestDriver_ClickAndKeys(t *testing.T) {
	d := New(t, counterModel{})
	d.Press(tea.KeyTab)
	d.Click(7, 2)

	assert.Equal(t, "presses=1 bumps=0 click=7,2 width=0", d.View())
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('x')
	assert.Equal(t, 0, d.Model.(counterModel).presses)
}
