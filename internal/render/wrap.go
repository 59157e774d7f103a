package render

import "strings"

// wrapText breaks s into lines no wider than maxWidth at word boundaries.
// A single word longer than maxWidth is left whole.
func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}
