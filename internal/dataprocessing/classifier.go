package dataprocessing

import (
	"regexp"

	"kwartal/internal/textnorm"
)

// RoleSet names the columns claimed for each identifier role. A nil entry
// means no column matched. Claims are made per role over the full header
// list, so one column may be claimed by more than one role.
type RoleSet struct {
	Region *string
	Period *string
	Type   *string
}

// IDColumns returns the claimed column names in collection order
// (region, period, type), skipping absent roles.
func (r RoleSet) IDColumns() []string {
	var ids []string
	for _, p := range []*string{r.Region, r.Period, r.Type} {
		if p != nil {
			ids = append(ids, *p)
		}
	}
	return ids
}

// typeLiteral is the only header that marks the category column.
const typeLiteral = "typ"

// Vocabulary and pattern tables for role detection. Entries are compared
// in canonical form (accents stripped, lowercased), hence the unaccented
// spellings next to the Polish originals.
var (
	regionVocab = map[string]bool{
		"region":      true,
		"wojewodztwo": true,
		"województwo": true,
		"kraj":        true,
		"country":     true,
		"province":    true,
		"obszar":      true,
		"jednostka":   true,
	}
	regionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`wojew`),
		regexp.MustCompile(`region`),
		regexp.MustCompile(`teryt`),
		regexp.MustCompile(`obszar`),
	}

	periodVocab = map[string]bool{
		"okres":   true,
		"period":  true,
		"kwartal": true,
		"kwartał": true,
		"rok":     true,
		"year":    true,
		"quarter": true,
		"miesiac": true,
		"miesiąc": true,
		"month":   true,
	}
	periodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`okres`),
		regexp.MustCompile(`kwarta`),
		regexp.MustCompile(`miesi`),
		regexp.MustCompile(`period`),
		regexp.MustCompile(`quarter`),
	}
)

// ClassifyColumns assigns identifier roles to source column names.
// Region and period run two passes each: exact vocabulary match on the
// canonical name, then a substring-pattern fallback; the first column in
// original order wins. The type column matches the literal "typ" only.
func ClassifyColumns(names []string) RoleSet {
	canonical := make([]string, len(names))
	for i, name := range names {
		canonical[i] = textnorm.Canonical(name)
	}

	var roles RoleSet
	roles.Region = claimColumn(names, canonical, regionVocab, regionPatterns)
	roles.Period = claimColumn(names, canonical, periodVocab, periodPatterns)
	for i, c := range canonical {
		if c == typeLiteral {
			roles.Type = &names[i]
			break
		}
	}
	return roles
}

func claimColumn(names, canonical []string, vocab map[string]bool, patterns []*regexp.Regexp) *string {
	for i, c := range canonical {
		if vocab[c] {
			return &names[i]
		}
	}
	for i, c := range canonical {
		for _, p := range patterns {
			if p.MatchString(c) {
				return &names[i]
			}
		}
	}
	return nil
}
