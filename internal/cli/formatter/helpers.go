package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/leettomato/internal/export"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Clock renders d as MM:SS, in red once over is set.
func Clock(d time.Duration, over bool) string {
	text := export.FormatClock(d)
	if over {
		return StyleRed.Bold(true).Render(text)
	}
	return StyleFg.Bold(true).Render(text)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts whole minutes into "1h 30m" form.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Topics joins topic tags, dimmed; "--" when there are none.
func Topics(topics []string) string {
	if len(topics) == 0 {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.Join(topics, ", "))
}

// WrapText breaks text on spaces so no line exceeds width.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// IndentWrapped wraps text and indents every line by prefix.
func IndentWrapped(text, prefix string, width int) string {
	lines := WrapText(text, width-lipgloss.Width(prefix))
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
