package content

import (
	"bytes"
	"html"
	"html/template"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	policy   = bluemonday.UGCPolicy()
	textOnly = bluemonday.StrictPolicy()
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
)

// Sanitize removes unsafe HTML from input with the UGC policy.
func Sanitize(input string) string {
	return policy.Sanitize(input)
}

// Escape escapes special characters like "<" to become "&lt;".
// It matches the behavior of html/template and is safe for use in HTML attributes.
func Escape(input string) string {
	return template.HTMLEscapeString(input)
}

// RenderMessage turns chat text into sanitized HTML. The visible text is
// always what was typed: bare URLs become links, and when markdown would
// hide or consume any character the text is shown as is.
func RenderMessage(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err == nil {
		out := strings.TrimSpace(Sanitize(buf.String()))
		if visible(out) == compact(text) {
			return template.HTML(out)
		}
	}
	return template.HTML(plain(text))
}

func plain(text string) string {
	lines := strings.Split(Escape(text), "\n")
	return Sanitize("<p>" + strings.Join(lines, "<br>\n") + "</p>")
}

// visible is the text a reader sees in rendered HTML, without whitespace.
func visible(rendered string) string {
	return compact(html.UnescapeString(textOnly.Sanitize(rendered)))
}

func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
