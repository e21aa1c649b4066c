package report

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks text greedily into segments no wider than width, as measured by measure.
// Words wider than width are split at rune boundaries.
func Wrap(text string, width float64, measure func(string) float64) []string {
	var segments []string
	current := ""

	for _, word := range strings.Fields(text) {
		if current != "" {
			candidate := current + " " + word
			if measure(candidate) <= width {
				current = candidate
				continue
			}
			segments = append(segments, current)
			current = ""
		}

		if measure(word) <= width {
			current = word
			continue
		}

		chunks := splitWord(word, width, measure)
		segments = append(segments, chunks[:len(chunks)-1]...)
		current = chunks[len(chunks)-1]
	}

	if current != "" {
		segments = append(segments, current)
	}
	return segments
}

// splitWord cuts word into chunks that fit width. A chunk always holds at least one rune.
func splitWord(word string, width float64, measure func(string) float64) []string {
	var chunks []string
	for word != "" {
		_, size := utf8.DecodeRuneInString(word)
		end := size
		for end < len(word) {
			_, next := utf8.DecodeRuneInString(word[end:])
			if measure(word[:end+next]) > width {
				break
			}
			end += next
		}
		chunks = append(chunks, word[:end])
		word = word[end:]
	}
	return chunks
}
