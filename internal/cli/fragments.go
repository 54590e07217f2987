package cli

import (
	"strings"
	"time"

	"github.com/catbot-team/catbot/internal/cli/formatter"
	"github.com/catbot-team/catbot/internal/domain"
)

// Fixed copy shown in each fragment.
const (
	checkInBody  = "How's your creative journey going today?"
	focusHeading = "Focus Mode"
	focusClock   = "25:00"
	focusButton  = "Start Focus Session"
	ideasHeading = "Content Ideas"
	ideasBody    = "Generate fresh content ideas based on your niche."
	breaksTitle  = "Time for a Break!"
	breaksBody   = "Enjoy this cat meme while you take a breather."
	memeHolder   = "Cat meme will appear here"
)

const (
	memeBoxWidth  = 36
	memeBoxHeight = 5
	contentIndent = "  "
)

// renderFragment returns the static content block for tab.
// now only affects the check-in greeting.
func renderFragment(tab domain.Tab, now time.Time, width int) string {
	switch tab {
	case domain.TabFocus:
		return renderFocus(width)
	case domain.TabIdeas:
		return renderIdeas()
	case domain.TabBreaks:
		return renderBreaks(width)
	default:
		return renderCheckIn(now)
	}
}

// greeting picks the salutation by local hour; noon onward is afternoon.
func greeting(now time.Time) string {
	if now.Hour() < 12 {
		return "Good morning! 😺"
	}
	return "Good afternoon! 😺"
}

func renderCheckIn(now time.Time) string {
	return indent(
		formatter.StyleTitle.Render(greeting(now)),
		"",
		formatter.Body(checkInBody),
	)
}

func renderFocus(width int) string {
	block := strings.Join([]string{
		formatter.StyleTitle.Render(focusHeading),
		"",
		formatter.StyleClock.Render(focusClock),
		"",
		formatter.Button(focusButton),
	}, "\n")
	return formatter.Center(block, width)
}

func renderIdeas() string {
	return indent(
		formatter.StyleTitle.Render(ideasHeading),
		"",
		formatter.Body(ideasBody),
	)
}

func renderBreaks(width int) string {
	block := strings.Join([]string{
		formatter.StyleTitle.Render(breaksTitle),
		"",
		formatter.Body(breaksBody),
		"",
		formatter.RenderBox(memeHolder, memeBoxWidth, memeBoxHeight),
	}, "\n")
	return formatter.Center(block, width)
}

func indent(lines ...string) string {
	for i, l := range lines {
		if l != "" {
			lines[i] = contentIndent + l
		}
	}
	return strings.Join(lines, "\n")
}
