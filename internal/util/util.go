// internal/util/util.go
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateToWidth shortens a single line to at most width terminal cells,
// appending an ellipsis if truncated. Wide (CJK) runes count as two cells.
func TruncateToWidth(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

// WrapToWidth wraps text to width terminal cells. Words are kept whole when
// they fit; longer runs, including unspaced Japanese text, are broken by cell.
func WrapToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var cur strings.Builder
		curWidth := 0
		for wi, w := range words {
			space := 0
			if wi > 0 && curWidth > 0 {
				space = 1
			}
			wWidth := runewidth.StringWidth(w)
			if curWidth+space+wWidth <= width {
				if space == 1 {
					cur.WriteByte(' ')
				}
				cur.WriteString(w)
				curWidth += space + wWidth
				continue
			}
			if curWidth > 0 {
				out = append(out, cur.String())
				cur.Reset()
				curWidth = 0
			}
			if wWidth <= width {
				cur.WriteString(w)
				curWidth = wWidth
				continue
			}
			for _, r := range w {
				rw := runewidth.RuneWidth(r)
				if curWidth+rw > width && curWidth > 0 {
					out = append(out, cur.String())
					cur.Reset()
					curWidth = 0
				}
				cur.WriteRune(r)
				curWidth += rw
			}
		}
		if cur.Len() > 0 {
			out = append(out, cur.String())
		}
	}
	return strings.Join(out, "\n")
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
