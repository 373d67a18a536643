// Package markup renders a small markdown dialect as ANSI-styled terminal
// text. Styling is a pipeline of ordered rewrite passes over an immutable
// string; unmatched syntax passes through literally.
package markup

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Pass order matters: bold consumes ** pairs before the single-asterisk
// italic pass runs, and the single-underscore italic pass rejects __ pairs
// so the underline pass still sees them. The fixed order is
// bold → italic(*) → italic(_) → underline(__) → strikethrough → links →
// lists → headers (longest prefix first).
var (
	boldRe        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	starItalicRe  = regexp.MustCompile(`\*([^*]+)\*`)
	underItalicRe = regexp.MustCompile(`_([^_]+)_`)
	underlineRe   = regexp.MustCompile(`__([^_]+)__`)
	strikeRe      = regexp.MustCompile(`~~([^~]+)~~`)
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	listRe        = regexp.MustCompile(`(?m)^\s*-\s+(.+)`)
	h3Re          = regexp.MustCompile(`(?m)^### (.+)`)
	h2Re          = regexp.MustCompile(`(?m)^## (.+)`)
	h1Re          = regexp.MustCompile(`(?m)^# (.+)`)
)

var (
	boldStyle   = color.New(color.Bold, color.Underline)
	italicStyle = color.New(color.Italic)
	underStyle  = color.New(color.Underline)
	strikeStyle = color.New(color.CrossedOut)
	urlStyle    = color.New(color.FgCyan, color.Underline)
	h3Style     = color.New(color.FgBlue, color.Bold)
	h2Style     = color.New(color.FgGreen, color.Bold)
	h1Style     = color.New(color.Bold, color.Underline)
)

// Style converts markup to display-ready styled text. It is pure and total:
// input without delimiters comes back unchanged modulo surrounding
// whitespace. It is not reentrant: styling already-styled output is
// undefined.
func Style(text string) string {
	text = boldRe.ReplaceAllString(text, boldStyle.Sprint("$1"))

	// Single-asterisk italic must not touch remnants of unmatched ** pairs,
	// so matches adjacent to another asterisk are skipped.
	text = replaceNonAdjacent(text, starItalicRe, '*', italicStyle)
	text = replaceNonAdjacent(text, underItalicRe, '_', italicStyle)

	text = underlineRe.ReplaceAllString(text, underStyle.Sprint("$1"))
	text = strikeRe.ReplaceAllString(text, strikeStyle.Sprint("$1"))

	text = linkRe.ReplaceAllString(text, "$1 ("+urlStyle.Sprint("$2")+")")
	text = listRe.ReplaceAllString(text, "• $1")

	text = h3Re.ReplaceAllString(text, h3Style.Sprint("$1"))
	text = h2Re.ReplaceAllString(text, h2Style.Sprint("$1"))
	text = h1Re.ReplaceAllString(text, h1Style.Sprint("$1"))

	return strings.TrimSpace(text)
}

// replaceNonAdjacent wraps each match of re in the given style, skipping
// matches whose surrounding bytes equal delim. This stands in for the
// negative lookarounds Go's regexp syntax does not support.
func replaceNonAdjacent(s string, re *regexp.Regexp, delim byte, style *color.Color) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && s[start-1] == delim {
			continue
		}
		if end < len(s) && s[end] == delim {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(style.Sprint(s[m[2]:m[3]]))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}
