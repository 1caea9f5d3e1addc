// Copyright 2026 Steunwijzer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package prefilter

import (
	"sort"
	"strings"

	"github.com/steunwijzer/steunwijzer/catalog"
	"github.com/steunwijzer/steunwijzer/core"
)

// Prefilter narrows the catalog to a bounded, heuristically ordered
// candidate set for the ranking oracle.
//
// Stages, per the pipeline contract:
//  1. municipality match (when required and the profile names one); a miss
//     short-circuits with an empty set plus disambiguation suggestions
//  2. single-parent relevance filter (when the profile is a single parent)
//  3. child-related filter (when the profile has children under 18)
//  4. deterministic heuristic score, stable descending sort, dedupe by row
//     identity (scraped catalogs repeat regulations), truncate to
//     MaxCandidates
//
// Per-row data issues never fail the prefilter; absent columns degrade to
// empty or false defaults inside the Row accessors.
func Prefilter(store *catalog.Store, profile core.UserProfile, opts Options) ([]catalog.Row, []string) {
	rows := store.Rows()

	var suggestions []string
	if opts.RequireGeoMatch && profile.Municipality != "" {
		rows, suggestions = store.MatchMunicipality(profile.Municipality, true)
		if len(rows) == 0 {
			return nil, suggestions
		}
	}

	if profile.IsSingleParent {
		rows = filterRows(rows, func(row catalog.Row) bool {
			return row.Bool(catalog.ColSingleParentRelevant) ||
				row.Bool(catalog.ColMentionsSingleParent) ||
				containsAny(row.Field(catalog.ColSingleParentSignals), opts.Keywords.SingleParent)
		})
	}

	if children(profile) > 0 {
		rows = filterRows(rows, func(row catalog.Row) bool {
			return containsAny(row.Field(catalog.ColTitle), opts.Keywords.Child) ||
				containsAny(row.Field(catalog.ColBenefitSignals), opts.Keywords.Child) ||
				containsAny(row.Field(catalog.ColSingleParentSignals), opts.Keywords.Child)
		})
	}

	scores := make([]float64, len(rows))
	for i, row := range rows {
		scores[i] = Score(row, profile, opts.Keywords, opts.Weights)
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	// Stable sort keeps original catalog order on ties, so output is
	// reproducible across runs.
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	// Scraped catalogs repeat regulations (same CVDR id under multiple
	// source pages); keep only the best-scored copy of each.
	seen := make(map[core.ID]bool, len(order))
	out := make([]catalog.Row, 0, len(order))
	for _, idx := range order {
		id := rows[idx].ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, rows[idx])
		if opts.MaxCandidates > 0 && len(out) == opts.MaxCandidates {
			break
		}
	}
	return out, suggestions
}

// Score computes the heuristic relevance of a row for a profile. The score
// is additive with fixed weights and exists only to pick the top candidates
// to send to the oracle; it is not surfaced to users.
func Score(row catalog.Row, profile core.UserProfile, kw Keywords, w Weights) float64 {
	score := 0.0

	title := row.Field(catalog.ColTitle)
	benefit := strings.Join(row.Signals(catalog.ColBenefitSignals), " ")
	spSignals := strings.Join(row.Signals(catalog.ColSingleParentSignals), " ")

	if profile.Municipality != "" {
		rowMuni := catalog.NormalizeMunicipality(row.Field(catalog.ColMunicipality))
		if strings.Contains(rowMuni, catalog.NormalizeMunicipality(profile.Municipality)) {
			score += w.GeoMatch
		}
	}

	if row.Bool(catalog.ColMentionsSingleParent) {
		score += w.ExplicitSingleParent
	}
	if row.Bool(catalog.ColSingleParentRelevant) {
		score += w.SingleParentRelevant
	}
	if profile.IsSingleParent && containsAny(spSignals, kw.SingleParent) {
		score += w.SingleParentSignal
	}

	if children(profile) > 0 {
		if containsAny(title, kw.Child) || containsAny(benefit, kw.Child) || containsAny(spSignals, kw.Child) {
			score += w.ChildMatch
		}
	}

	if containsAny(benefit, kw.Money) || containsAny(title, kw.Money) {
		score += w.MoneyMatch
	}

	if year, ok := row.Year(); ok {
		switch {
		case year >= 2025:
			score += w.CurrentYear
		case year >= 2023:
			score += w.RecentYear
		}
	}

	if len(row.Signals(catalog.ColEligibilitySignals)) > 0 {
		score += w.EligibilitySignals
	}
	if len(row.Signals(catalog.ColApplicationDataSignals)) > 0 {
		score += w.ApplicationSignals
	}

	return score
}

func children(profile core.UserProfile) int {
	if profile.ChildrenU18 == nil {
		return 0
	}
	return *profile.ChildrenU18
}

// containsAny reports whether any keyword occurs as a substring of text,
// case-insensitively.
func containsAny(text string, keywords []string) bool {
	t := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

func filterRows(rows []catalog.Row, keep func(catalog.Row) bool) []catalog.Row {
	out := rows[:0:0]
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}
