package report

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// sanitize drops the runes the PDF core fonts (Windows-1252) cannot show, emoji included.
func sanitize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// toWinAnsi transcodes s to Windows-1252 bytes, as expected by fpdf for core fonts.
func toWinAnsi(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
		}
	}
	return string(out)
}
