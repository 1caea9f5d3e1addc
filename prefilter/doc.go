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


// Package prefilter deterministically narrows the regulation catalog to a
// bounded candidate set before the expensive generative ranking step.
//
// The prefilter applies the municipality match, boolean relevance filters,
// and an additive heuristic score with fixed weights, then truncates to the
// configured maximum. Scores are ephemeral: they order the candidate set
// and are discarded, never surfaced to callers.
//
// Keyword lists and weights are configuration (see Keywords and Weights)
// with Dutch production defaults, so a deployment can localize them without
// touching the filtering logic.
//
// Project maps the surviving rows into the whitelisted core.Candidate
// records that form the oracle payload; it is the privacy and cost boundary
// between the raw catalog and the generative model.
package prefilter
