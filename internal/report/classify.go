package report

import (
	"regexp"
	"strings"
)

type Kind int

const (
	KindPlain Kind = iota
	KindWorkoutHeader
	KindDietHeader
	KindTipsHeader
	KindDayHeader
	KindBullet
	KindNumbered
)

func (k Kind) String() string {
	switch k {
	case KindWorkoutHeader:
		return "workout-header"
	case KindDietHeader:
		return "diet-header"
	case KindTipsHeader:
		return "tips-header"
	case KindDayHeader:
		return "day-header"
	case KindBullet:
		return "bullet"
	case KindNumbered:
		return "numbered"
	default:
		return "plain"
	}
}

// Rule maps a trimmed line to a block kind. Text returns the displayed text,
// without the style marker.
type Rule struct {
	Kind  Kind
	Match func(line string) bool
	Text  func(line string) string
}

var numberedPrefix = regexp.MustCompile(`^[0-9]+\.`)

// Rules are evaluated top to bottom, first match wins.
var Rules = []Rule{
	{Kind: KindWorkoutHeader, Match: sectionMatcher("Workout Plan:"), Text: stripBold},
	{Kind: KindDietHeader, Match: sectionMatcher("Dietary Plan:"), Text: stripBold},
	{Kind: KindTipsHeader, Match: sectionMatcher("Tips:"), Text: stripBold},
	{Kind: KindDayHeader, Match: isDayHeader, Text: stripBold},
	{
		Kind:  KindBullet,
		Match: func(line string) bool { return strings.HasPrefix(line, "*") },
		Text:  func(line string) string { return strings.TrimSpace(line[1:]) },
	},
	{Kind: KindNumbered, Match: numberedPrefix.MatchString, Text: identity},
	{Kind: KindPlain, Match: func(string) bool { return true }, Text: identity},
}

// sectionMatcher accepts **Title:**, **Title**: and the plain Title: form.
func sectionMatcher(title string) func(string) bool {
	return func(line string) bool {
		return strings.HasPrefix(stripBold(line), title) &&
			(strings.HasPrefix(line, "**") || strings.HasPrefix(line, title))
	}
}

func isDayHeader(line string) bool {
	if strings.HasPrefix(line, "**Day") {
		return true
	}
	if !strings.HasPrefix(line, "Day") || len(line) < 4 {
		return false
	}
	c := line[3]
	return c == ' ' || (c >= '0' && c <= '9')
}

func stripBold(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
}

func identity(line string) string { return line }

type Block struct {
	Kind  Kind
	Text  string
	Style Style
}

// Classify returns the block for a single raw line. Blank lines yield false.
func Classify(line string) (Block, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Block{}, false
	}

	for _, rule := range Rules {
		if !rule.Match(line) {
			continue
		}
		return Block{
			Kind:  rule.Kind,
			Text:  strings.TrimSpace(sanitize(rule.Text(line))),
			Style: StyleFor(rule.Kind),
		}, true
	}

	// unreachable, the last rule matches everything
	return Block{Kind: KindPlain, Text: sanitize(line), Style: StyleFor(KindPlain)}, true
}

// Parse classifies every line of planText independently.
func Parse(planText string) []Block {
	planText = strings.ReplaceAll(planText, "\r\n", "\n")
	var blocks []Block
	for _, line := range strings.Split(planText, "\n") {
		if b, ok := Classify(line); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
