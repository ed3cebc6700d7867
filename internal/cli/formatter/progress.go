package formatter

import (
	"fmt"
	"strings"
)

// RenderProgress draws a fixed-width progress bar like "████░░░░ 50%".
func RenderProgress(current, total int, width int) string {
	if width <= 0 {
		width = 20
	}
	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	filled := current * width / total
	pct := current * 100 / total

	bar := StyleGreen.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d%%", bar, pct)
}

// RenderBarChart draws a horizontal bar chart, one row per entry, with
// bars scaled against the largest value. Labels are right-padded to align.
func RenderBarChart(labels []string, values []float64, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 30
	}

	var maxVal float64
	labelWidth := 0
	for i, v := range values {
		if v > maxVal {
			maxVal = v
		}
		if i < len(labels) && len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}

	var b strings.Builder
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		width := 0
		if maxVal > 0 {
			width = int(v / maxVal * float64(maxWidth))
		}
		if v > 0 && width == 0 {
			width = 1
		}

		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, label))
		b.WriteString(StyleBlue.Render(strings.Repeat("█", width)))
		b.WriteString(fmt.Sprintf(" %g\n", v))
	}
	return b.String()
}

// RenderBalanceBars draws push/pull/legs distribution rows with a percent
// scale, e.g. "Push  ██████████ 42%".
func RenderBalanceBars(labels []string, percents []float64, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 25
	}

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var b strings.Builder
	for i, pct := range percents {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		width := int(pct / 100 * float64(maxWidth))
		if pct > 0 && width == 0 {
			width = 1
		}

		style := StyleGreen
		if pct < 25 {
			style = StyleYellow
		}

		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, label))
		b.WriteString(style.Render(strings.Repeat("█", width)))
		b.WriteString(fmt.Sprintf(" %g%%\n", pct))
	}
	return b.String()
}
