package envvar

import (
	"github.com/agext/levenshtein"
	"github.com/sahilm/fuzzy"
)

// maxSuggestDistance is the largest edit distance offered as a suggestion.
const maxSuggestDistance = 3

// suggest returns the candidate closest to word, or "" if none is close.
// Fuzzy subsequence matches are preferred; otherwise the candidate with the
// smallest edit distance wins.
func suggest(word string, candidates []string) string {
	if word == "" || len(candidates) == 0 {
		return ""
	}

	if matches := fuzzy.Find(word, candidates); len(matches) > 0 {
		return matches[0].Str
	}

	best, bestDist := "", maxSuggestDistance+1

	for _, c := range candidates {
		if d := levenshtein.Distance(word, c, nil); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}
