package render

import "strings"

// presenceAttrs are written as an empty attribute when true and omitted
// when false.
var presenceAttrs = func() map[string]bool {
	set := make(map[string]bool)
	for _, name := range strings.Fields(`
		allowfullscreen async autofocus autoplay controls default defer
		disabled formnovalidate hidden ismap loop multiple muted novalidate
		open readonly required reversed selected`) {
		set[name] = true
	}
	return set
}()

func isBooleanAttr(name string) bool {
	return presenceAttrs[name]
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#39;",
		"\n", "&#10;", "\r", "&#13;", "\t", "&#9;",
	)
)

func escapeHTML(s string) string { return textEscaper.Replace(s) }

// escapeAttr also encodes line breaks and tabs so values survive a round
// trip through an attribute.
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
