// Package textnorm provides the lexical normalization primitives used
// throughout the pipeline: accent stripping, whitespace collapsing and
// rewriting of Polish long-form dates into DD.MM.YYYY.
package textnorm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes combining diacritical marks after canonical
// decomposition (e.g. "Województwo" -> "Wojewodztwo"). Letters without a
// decomposed form, such as "ł", pass through unchanged.
func StripAccents(s string) string {
	result, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return result
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace collapses runs of whitespace to a single space and
// trims both ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Canonical is the form column names and vocabulary entries are compared
// in: accents stripped, lowercased, whitespace collapsed.
func Canonical(s string) string {
	return CollapseWhitespace(strings.ToLower(StripAccents(s)))
}

// monthNumbers maps genitive Polish month names to month numbers. Accented
// months carry an unaccented spelling variant because exports arrive in
// mixed encodings that may have lost their diacritics.
var monthNumbers = map[string]int{
	"stycznia":     1,
	"lutego":       2,
	"marca":        3,
	"kwietnia":     4,
	"maja":         5,
	"czerwca":      6,
	"lipca":        7,
	"sierpnia":     8,
	"września":     9,
	"wrzesnia":     9,
	"października": 10,
	"pazdziernika": 10,
	"listopada":    11,
	"grudnia":      12,
}

var polishDatePattern = regexp.MustCompile(
	`(?i)\b(\d{1,2})\s+(stycznia|lutego|marca|kwietnia|maja|czerwca|lipca|sierpnia|września|wrzesnia|października|pazdziernika|listopada|grudnia)\s+(\d{4})(?:\s*r\.?)?`)

// NormalizePolishDates rewrites every occurrence of the long form
// "<day> <month name> <year>[ r.]" into "DD.MM.YYYY". Text outside the
// matches is left untouched, and the rewrite is idempotent: the output
// contains no month names, so a second pass finds nothing to replace.
func NormalizePolishDates(s string) string {
	return polishDatePattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := polishDatePattern.FindStringSubmatch(m)
		day, err := strconv.Atoi(parts[1])
		if err != nil || day < 1 || day > 31 {
			return m
		}
		month := monthNumbers[strings.ToLower(parts[2])]
		if month == 0 {
			return m
		}
		return fmt.Sprintf("%02d.%02d.%s", day, month, parts[3])
	})
}
