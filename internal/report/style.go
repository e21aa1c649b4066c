package report

// Page geometry, in points (US Letter).
const (
	PageWidth   = 612.0
	PageHeight  = 792.0
	Margin      = 50.0
	UsableWidth = PageWidth - 2*Margin

	titleGap    = 30.0
	subtitleGap = 40.0
	// BodyTop is the baseline of the first body line on the first page.
	BodyTop = Margin + titleGap + subtitleGap
	// BodyBottom is the last baseline a line may be placed on before a page break.
	BodyBottom = PageHeight - Margin
	FooterY    = PageHeight - Margin/2

	indentStep = 20.0
	fontFamily = "Helvetica"
)

const (
	Title    = "Health & Fitness Report"
	Subtitle = "Your Personalized Health Journey"
	Footer   = "Generated with love by SYNTAX SQUAD"
)

type Color struct {
	R, G, B int
}

var (
	colorBlack     = Color{0, 0, 0}
	colorBlue      = Color{51, 102, 153}
	colorGray      = Color{102, 102, 102}
	colorGreen     = Color{51, 153, 102}
	colorPurple    = Color{153, 51, 153}
	colorLightBlue = Color{102, 153, 204}
)

// Style is everything needed to draw a line, so a page break never depends on
// font or color state left behind by a previous drawing call.
type Style struct {
	Family     string
	Bold       bool
	Size       float64
	Color      Color
	Indent     float64
	LineHeight float64
	Marker     string
}

// fontStyle returns the fpdf style string.
func (s Style) fontStyle() string {
	if s.Bold {
		return "B"
	}
	return ""
}

var (
	titleStyle    = Style{Family: fontFamily, Bold: true, Size: 24, Color: colorBlue}
	subtitleStyle = Style{Family: fontFamily, Size: 14, Color: colorGray}
	footerStyle   = Style{Family: fontFamily, Bold: true, Size: 10, Color: colorGray}
)

func sectionStyle(c Color) Style {
	return Style{Family: fontFamily, Bold: true, Size: 16, Color: c, LineHeight: 18, Marker: "» "}
}

var styles = map[Kind]Style{
	KindWorkoutHeader: sectionStyle(colorGreen),
	KindDietHeader:    sectionStyle(colorPurple),
	KindTipsHeader:    sectionStyle(colorLightBlue),
	KindDayHeader:     {Family: fontFamily, Bold: true, Size: 14, Color: colorBlue, Indent: indentStep, LineHeight: 16},
	KindBullet:        {Family: fontFamily, Size: 12, Color: colorBlack, Indent: 2 * indentStep, LineHeight: 14, Marker: "• "},
	KindNumbered:      {Family: fontFamily, Size: 12, Color: colorBlue, Indent: indentStep, LineHeight: 14},
	KindPlain:         {Family: fontFamily, Size: 12, Color: colorBlack, Indent: indentStep, LineHeight: 14},
}

func StyleFor(k Kind) Style {
	return styles[k]
}
