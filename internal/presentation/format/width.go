package format

import (
	"strings"

	"golang.org/x/text/width"
)

// displayWidth counts terminal columns: wide and fullwidth runes take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padRight(s string, cols int) string {
	if gap := cols - displayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, cols int) string {
	if gap := cols - displayWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
