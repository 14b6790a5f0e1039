package systems

import (
	"image/color"
	"strconv"
	"strings"
)

const (
	colorTagOpen  = "<color=#"
	colorTagClose = "</color>"
)

// TextSpan is a run of text drawn in one color.
type TextSpan struct {
	Text  string
	Color color.RGBA
}

// ParseRichText splits a line on <color=#RRGGBB>...</color> tags. Text outside
// tags and malformed tags use the fallback color.
func ParseRichText(line string, fallback color.RGBA) []TextSpan {
	var spans []TextSpan
	appendSpan := func(s string, c color.RGBA) {
		if s == "" {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Color == c {
			spans[n-1].Text += s
			return
		}
		spans = append(spans, TextSpan{Text: s, Color: c})
	}

	for line != "" {
		start := strings.Index(line, colorTagOpen)
		if start < 0 {
			appendSpan(line, fallback)
			break
		}
		appendSpan(line[:start], fallback)
		rest := line[start:]

		c, body, tail, ok := parseColorTag(rest)
		if !ok {
			appendSpan(rest[:len(colorTagOpen)], fallback)
			line = rest[len(colorTagOpen):]
			continue
		}
		appendSpan(body, c)
		line = tail
	}
	return spans
}

// parseColorTag parses a tag at the start of s and returns the colored body and the remaining text.
func parseColorTag(s string) (c color.RGBA, body, tail string, ok bool) {
	hex := s[len(colorTagOpen):]
	if len(hex) < 7 || hex[6] != '>' {
		return c, "", "", false
	}
	v, err := strconv.ParseUint(hex[:6], 16, 32)
	if err != nil {
		return c, "", "", false
	}
	inner := hex[7:]
	end := strings.Index(inner, colorTagClose)
	if end < 0 {
		return c, "", "", false
	}
	c = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	return c, inner[:end], inner[end+len(colorTagClose):], true
}

// PlainText strips color tags.
func PlainText(spans []TextSpan) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
