// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Cleans provider titles and snippets before they reach the extractors

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes HTML tags and decodes entities from a string.
// Script and style contents are dropped entirely.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseSpaces(s)
	}

	var b strings.Builder
	skip := 0
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return collapseSpaces(b.String())
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if isRawTextTag(name) {
				skip++
			}
			separate(&b, name)
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(name) && skip > 0 {
				skip--
			}
			separate(&b, name)
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			separate(&b, name)
		}
	}
}

// DecodeEntities decodes HTML entities without touching tags
func DecodeEntities(text string) string {
	return html.UnescapeString(text)
}

func isRawTextTag(name []byte) bool {
	tag := string(name)
	return tag == "script" || tag == "style"
}

// inlineTags do not break words, so "<b>Acme</b>'s" stays "Acme's"
var inlineTags = map[string]bool{
	"a": true, "b": true, "i": true, "em": true, "strong": true,
	"span": true, "u": true, "small": true, "mark": true,
}

func separate(b *strings.Builder, name []byte) {
	if !inlineTags[string(name)] {
		b.WriteByte(' ')
	}
}

// collapseSpaces trims and folds runs of whitespace (including NBSP) into single spaces
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
