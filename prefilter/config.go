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

// Keywords are the language-specific term lists the prefilter matches
// against catalog signal fields. They are configuration, not logic: a
// deployment for another language or municipality landscape supplies its
// own lists.
type Keywords struct {
	// SingleParent marks a row as relevant to single-parent households.
	SingleParent []string

	// Child marks a row as related to children or schooling.
	Child []string

	// Money marks a row as direct monetary support.
	Money []string
}

// DutchKeywords returns the production keyword set for Dutch municipal
// regulation catalogs.
func DutchKeywords() Keywords {
	return Keywords{
		SingleParent: []string{"alleenstaande ouder", "eenouder"},
		Child: []string{
			"kind", "kinderen", "jeugd", "leerling",
			"school", "kinderopvang", "gezins",
		},
		Money: []string{
			"bijzondere bijstand", "inkomenstoeslag", "participatie",
			"tegemoetkoming", "kinderopvang", "schoolkosten",
		},
	}
}

// Weights are the additive score contributions of the relevance heuristic.
// Fixed defaults keep scoring reproducible for testing; deployments may
// tune them.
type Weights struct {
	GeoMatch             float64 // profile municipality inside row municipality
	ExplicitSingleParent float64 // mentions_single_parent_explicitly flag
	SingleParentRelevant float64 // single_parent_relevant flag
	SingleParentSignal   float64 // single-parent keyword in signal list
	ChildMatch           float64 // child keyword in title or signals
	MoneyMatch           float64 // monetary-support keyword in title or benefits
	CurrentYear          float64 // year >= 2025
	RecentYear           float64 // 2023 <= year < 2025
	EligibilitySignals   float64 // non-empty eligibility signal field
	ApplicationSignals   float64 // non-empty application-data signal field
}

// DefaultWeights returns the production heuristic weights.
func DefaultWeights() Weights {
	return Weights{
		GeoMatch:             2.0,
		ExplicitSingleParent: 3.0,
		SingleParentRelevant: 1.5,
		SingleParentSignal:   2.0,
		ChildMatch:           2.0,
		MoneyMatch:           1.0,
		CurrentYear:          1.0,
		RecentYear:           0.5,
		EligibilitySignals:   0.2,
		ApplicationSignals:   0.2,
	}
}

// Options configure a prefilter run.
type Options struct {
	// RequireGeoMatch first narrows the catalog to the profile's
	// municipality. When the municipality has no match, the prefilter
	// short-circuits with suggestions.
	RequireGeoMatch bool

	// MaxCandidates bounds the candidate set handed to the ranking oracle.
	MaxCandidates int

	Keywords Keywords
	Weights  Weights
}

// DefaultOptions returns production prefilter options: geo matching
// required, at most 60 candidates, Dutch keywords, default weights.
func DefaultOptions() Options {
	return Options{
		RequireGeoMatch: true,
		MaxCandidates:   60,
		Keywords:        DutchKeywords(),
		Weights:         DefaultWeights(),
	}
}
