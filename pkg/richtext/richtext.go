package richtext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// markupPattern matches editor tags and non-breaking space entities
var markupPattern = regexp.MustCompile(`<[^>]*>|&nbsp;`)

// titlePrefixPattern matches a "[팀명] " style prefix left by older clients
var titlePrefixPattern = regexp.MustCompile(`\[.*?\]\s*`)

// PlainText strips all markup from editor HTML and trims the result
func PlainText(html string) string {
	return strings.TrimSpace(markupPattern.ReplaceAllString(html, ""))
}

// PlainTextLength returns the number of characters a reader sees
func PlainTextLength(html string) int {
	return utf8.RuneCountInString(PlainText(html))
}

// Length returns the character count of s
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// StripTitlePrefix removes the first bracketed prefix (and trailing spaces) from a title
func StripTitlePrefix(title string) string {
	loc := titlePrefixPattern.FindStringIndex(title)
	if loc == nil {
		return title
	}
	return title[:loc[0]] + title[loc[1]:]
}
