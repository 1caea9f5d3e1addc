package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

const (
	// localityPrefix is the Dutch locality prefix stripped during
	// municipality normalization ("gemeente Utrecht" -> "utrecht").
	localityPrefix = "gemeente "

	maxSuggestions   = 10
	suggestionCutoff = 0.6
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeMunicipality canonicalizes a municipality name for matching:
// lowercase, internal whitespace collapsed, leading locality prefix removed.
func NormalizeMunicipality(s string) string {
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(strings.ToLower(s)), " ")
	return strings.TrimPrefix(s, localityPrefix)
}

// MatchMunicipality filters the catalog to rows matching the requested
// municipality name. Matching is all-or-nothing per stage, first non-empty
// stage wins:
//
//  1. exact equality on the normalized form
//  2. substring containment (requested name inside the catalog value)
//  3. when fuzzy is enabled, no rows plus up to 10 near-match suggestions
//     drawn from the catalog's distinct municipality set
//
// An empty requested name matches every row. The returned suggestions are
// meant for the caller to surface to the user for disambiguation; a miss is
// never an error.
func (s *Store) MatchMunicipality(requested string, fuzzy bool) ([]Row, []string) {
	target := NormalizeMunicipality(requested)
	if target == "" {
		return s.Rows(), nil
	}

	var exact, partial []Row
	for i := range s.records {
		row := Row{store: s, index: i}
		norm := NormalizeMunicipality(row.Field(ColMunicipality))
		if norm == target {
			exact = append(exact, row)
		} else if strings.Contains(norm, target) {
			partial = append(partial, row)
		}
	}

	if len(exact) > 0 {
		return exact, nil
	}
	if len(partial) > 0 {
		return partial, nil
	}
	if !fuzzy {
		return nil, nil
	}

	return nil, closeMatches(target, s.municipalities, maxSuggestions, suggestionCutoff)
}

// closeMatches returns up to n candidates whose similarity to target is at
// least cutoff, best-first. Similarity is a normalized edit ratio
// (substitutions cost two edits), equivalent assuming few transpositions to
// the classic sequence-matcher ratio.
func closeMatches(target string, candidates []string, n int, cutoff float64) []string {
	type scored struct {
		name  string
		ratio float64
	}

	matches := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		r := similarityRatio(target, c)
		if r >= cutoff {
			matches = append(matches, scored{name: c, ratio: r})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ratio > matches[j].ratio
	})
	if len(matches) > n {
		matches = matches[:n]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

func similarityRatio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1 - float64(dist)/float64(total)
}
