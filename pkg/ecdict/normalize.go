package ecdict

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// lineBreakRegexp turns embedded line breaks, together with any
// whitespace hugging them, into "; " sense separators:
//
//	"to move quickly\n a short trip" -> "to move quickly; a short trip"
var lineBreakRegexp = regexp.MustCompile(`\s*\n\s*`)

// doubleSepRegexp collapses "; ;" artifacts left behind by the
// line-break substitution when a line was already ";"-terminated.
var doubleSepRegexp = regexp.MustCompile(`;\s*;`)

// NormalizeTerm derives the join key from a raw English term: internal
// whitespace runs collapse to single spaces, edges are trimmed, and the
// result is lowercased. Equality on normalized terms is therefore case-
// and whitespace-insensitive:
//
//	NormalizeTerm(" Foo  Bar ") == NormalizeTerm("foo bar") == "foo bar"
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.Join(strings.Fields(term), " "))
}

// NormalizeTranslation cleans a raw dictionary translation field.
//
// Raw ECDICT rows occasionally carry HTML entities (&amp;, &eacute;, ...),
// which are decoded first. Embedded line breaks then become "; "
// separators and any resulting "; ;" runs collapse to a single "; ".
// An empty result means the record carries no usable translation.
func NormalizeTranslation(text string) string {
	cleaned := html.UnescapeString(text)
	cleaned = lineBreakRegexp.ReplaceAllString(strings.TrimSpace(cleaned), "; ")
	cleaned = doubleSepRegexp.ReplaceAllString(cleaned, "; ")
	return cleaned
}
