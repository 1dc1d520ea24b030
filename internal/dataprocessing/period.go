package dataprocessing

import (
	"regexp"
	"strconv"

	"kwartal/internal/textnorm"
)

// PeriodForm classifies how a token expresses a reporting period.
type PeriodForm int

const (
	NotAPeriod PeriodForm = iota
	QuarterForm
	IsoForm
	PolishDateForm
	YearOnlyForm
)

var (
	quarterPattern = regexp.MustCompile(`(?i)^\d{4}[-/]?q[1-4]$`)
	// RE2 has no backreferences, so "both separators must match" is two
	// per-separator patterns rather than one with a captured separator.
	isoDashPattern    = regexp.MustCompile(`^\d{4}-\d{2}(-\d{2})?$`)
	isoSlashPattern   = regexp.MustCompile(`^\d{4}/\d{2}(/\d{2})?$`)
	polishDatePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	yearOnlyPattern   = regexp.MustCompile(`^\d{4}$`)

	dottedYearPattern  = regexp.MustCompile(`\d{2}\.\d{2}\.(\d{4})`)
	leadingYearPattern = regexp.MustCompile(`^\d{4}`)
	anyYearPattern     = regexp.MustCompile(`\d{4}`)
)

// ClassifyPeriod determines the period form of a token. The Polish date
// form is tested after long-form date rewriting, so "31 marca 2025 r."
// classifies the same as "31.03.2025".
func ClassifyPeriod(s string) PeriodForm {
	s = textnorm.CollapseWhitespace(s)
	switch {
	case quarterPattern.MatchString(s):
		return QuarterForm
	case isoDashPattern.MatchString(s) || isoSlashPattern.MatchString(s):
		return IsoForm
	case polishDatePattern.MatchString(textnorm.NormalizePolishDates(s)):
		return PolishDateForm
	case yearOnlyPattern.MatchString(s):
		return YearOnlyForm
	default:
		return NotAPeriod
	}
}

// IsPeriodToken reports whether s expresses a reporting period.
func IsPeriodToken(s string) bool {
	return ClassifyPeriod(s) != NotAPeriod
}

// ExtractYear pulls a year out of arbitrary period-ish text. It is
// deliberately more permissive than ClassifyPeriod so that garbage-suffixed
// period cells still yield a usable year. Tried in order: the year group of
// a DD.MM.YYYY substring, four digits at the start, then the first run of
// four digits anywhere.
func ExtractYear(s string) (int, bool) {
	if m := dottedYearPattern.FindStringSubmatch(s); m != nil {
		return mustAtoi(m[1]), true
	}
	if m := leadingYearPattern.FindString(s); m != "" {
		return mustAtoi(m), true
	}
	if m := anyYearPattern.FindString(s); m != "" {
		return mustAtoi(m), true
	}
	return 0, false
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
