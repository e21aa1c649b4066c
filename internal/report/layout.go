package report

// Measurer returns the rendered width of text drawn with style, in points.
type Measurer interface {
	Width(text string, style Style) float64
}

// PlacedLine is a wrapped segment with its final position. Y is the baseline,
// measured from the top edge of the page.
type PlacedLine struct {
	Page  int
	X     float64
	Y     float64
	Text  string
	Kind  Kind
	Style Style
}

type Layout struct {
	Pages int
	Lines []PlacedLine
}

// LinesOn returns the lines placed on the given page (1-based).
func (l Layout) LinesOn(page int) []PlacedLine {
	var lines []PlacedLine
	for _, line := range l.Lines {
		if line.Page == page {
			lines = append(lines, line)
		}
	}
	return lines
}

// Paginate wraps every block to the usable width minus its indent and places
// the segments top to bottom. A line whose baseline would fall below the bottom
// margin starts a new page.
func Paginate(blocks []Block, m Measurer) Layout {
	layout := Layout{Pages: 1}
	y := BodyTop

	for _, b := range blocks {
		style := b.Style
		measure := func(s string) float64 { return m.Width(s, style) }
		for _, segment := range Wrap(style.Marker+b.Text, UsableWidth-style.Indent, measure) {
			if y > BodyBottom {
				layout.Pages++
				y = Margin
			}
			layout.Lines = append(layout.Lines, PlacedLine{
				Page:  layout.Pages,
				X:     Margin + style.Indent,
				Y:     y,
				Text:  segment,
				Kind:  b.Kind,
				Style: style,
			})
			y += style.LineHeight
		}
	}

	return layout
}
