// Package candidates extracts alternative phrasings from free-form model output.
package candidates

import (
	"regexp"
	"strings"
)

// Max is the number of candidates a caller ever receives.
const Max = 3

var (
	listItemPattern = regexp.MustCompile(`(?m)^\s*(?:\d+\.|[-*])\s*(.+)$`)
	lineBreaks      = regexp.MustCompile(`\n+`)
)

// Parse returns up to Max candidates from raw. Numbered or bulleted items are
// used when at least Max of them are present; otherwise the first non-empty
// lines are used as-is. The result is never nil.
func Parse(raw string) []string {
	var items []string
	for _, match := range listItemPattern.FindAllStringSubmatch(raw, -1) {
		items = append(items, strings.TrimSpace(match[1]))
	}
	if len(items) >= Max {
		return items[:Max]
	}

	lines := make([]string, 0, Max)
	for _, line := range lineBreaks.Split(raw, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == Max {
			break
		}
	}
	return lines
}
