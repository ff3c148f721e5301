package ui

import (
	"fmt"
	"strings"
	"time"
)

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// padRight pads s with spaces to width, truncating when longer.
func padRight(s string, width int) string {
	if len([]rune(s)) >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len([]rune(s)))
}

// formatClock renders a timestamp as local wall-clock time.
func formatClock(t time.Time) string {
	if t.IsZero() {
		return "--:--:--"
	}
	return t.Local().Format("15:04:05")
}

// formatDuration renders a request duration in milliseconds.
func formatDuration(ms int64) string {
	if ms >= 1000 {
		return fmt.Sprintf("%.1fs", float64(ms)/1000)
	}
	return fmt.Sprintf("%dms", ms)
}

// clampCursor keeps cursor within [0, length-1], returning 0 for empty lists.
func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
