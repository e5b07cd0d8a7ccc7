package fundcompare

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Scheme names never match verbatim between a NAV source and a statement:
// registrars abbreviate ("HDFC Flexi Cap Fund -Regular Plan" vs "HDFC Flexi
// Cap Fund - Regular Plan - Growth"). A token-sort Levenshtein ratio is
// tolerant to word order and minor spelling drift.

// matchThreshold is the minimum token-sort ratio (0..100) for two scheme
// names to be considered the same scheme.
const matchThreshold = 70

// MatchScheme finds among candidates the scheme name closest to apiName.
// It returns the best candidate and whether it clears the match threshold.
func MatchScheme(apiName string, candidates []string) (string, bool) {
	best, bestScore := "", -1
	for _, c := range candidates {
		if score := tokenSortRatio(apiName, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= matchThreshold
}

// tokenSortRatio normalizes both names (lower case, alphanumeric tokens,
// sorted) and returns a similarity ratio in 0..100 derived from the
// Levenshtein distance between the normalized forms.
func tokenSortRatio(a, b string) int {
	na, nb := tokenSort(a), tokenSort(b)
	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 0
	}
	dist := fuzzy.LevenshteinDistance(na, nb)
	return 100 - (100*dist+longest/2)/longest
}

func tokenSort(s string) string {
	tokens := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
