package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded border with an optional title.
func RenderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)

	if title != "" {
		content = StyleHeader.Render(title) + "\n" + content
	}
	return box.Render(content)
}

// HumanDate formats an ISO date string (2006-01-02) as "Mon, Jan 2 2006".
// Unparseable input is returned as-is.
func HumanDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2 2006")
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatVolume renders a volume figure with its unit, trimming trailing
// zeros (e.g. "1250 kg", "1237.5 kg").
func FormatVolume(volume float64, unit string) string {
	return fmt.Sprintf("%s %s", strconv.FormatFloat(volume, 'f', -1, 64), unit)
}

// FormatWeight renders a single set weight with its unit.
func FormatWeight(weight float64, unit string) string {
	return strconv.FormatFloat(weight, 'f', -1, 64) + unit
}
