package extensions

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StripRangePrefix drops any leading caret and tilde characters from a declared
// dependency specifier, so "^15.2.0" becomes "15.2.0".
func StripRangePrefix(specifier string) string {
	return strings.TrimLeft(specifier, "^~")
}

// FirstVersionToken returns the first whitespace separated token of text that starts
// with a digit, e.g. "15.2.3" from "Next.js 15.2.3".
func FirstVersionToken(text string) (string, bool) {
	for _, token := range strings.Fields(text) {
		first, _ := utf8.DecodeRuneInString(token)
		if unicode.IsDigit(first) {
			return token, true
		}
	}

	return "", false
}
