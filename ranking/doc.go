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


// Package ranking turns a prefiltered candidate list into a ranked,
// explained short-list using a chat completion model.
//
// The Oracle serializes the user profile and the whitelisted candidate
// projection into a single prompt, demands a bare JSON array back, and
// normalizes whatever the model actually returns: code fences are
// stripped, common JSON damage is repaired, and as a last resort the
// first bracketed array is pulled out of surrounding prose. Transport
// failures are retried with exponential backoff; an unparseable response
// is fatal (ErrRankingParse) because retrying a model that answered in
// prose rarely changes the outcome.
//
// Parsed items are coerced into the domain shape: missing confidence
// defaults to low, scores are clamped to [0, 100], duplicate ranks keep
// their first occurrence, and the list is re-sorted by ascending rank
// and capped at the requested size.
package ranking
