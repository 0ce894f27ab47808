package tui

import "strings"

// Truncate cuts s to at most maxLen runes
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// TrimMiddle shortens s to width by replacing its middle with "...",
// or cutting the tail when width is too small to hold the marker
func TrimMiddle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 5 {
		return string(runes[:width])
	}
	head := width/2 - 2
	tail := width - head - 3
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}

// PadRight pads string with spaces to width
func PadRight(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Fit returns s padded or truncated to exactly width runes
func Fit(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}

// RuneLen returns display width (rune count, not byte count)
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}

// longestLine returns the rune length of the longest line
func longestLine(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, RuneLen(l))
	}
	return w
}
