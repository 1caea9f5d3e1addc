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


package ranking

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/steunwijzer/steunwijzer/core"
)

// rawRankedItem accepts the loosely-typed shapes models actually emit:
// numbers as strings, null where a value was expected, and so on.
type rawRankedItem struct {
	Rank               any      `json:"rank"`
	Score              any      `json:"score"`
	Title              string   `json:"title"`
	Municipality       string   `json:"municipality"`
	Category           string   `json:"category"`
	Year               any      `json:"year"`
	URL                string   `json:"url"`
	BenefitSummary     string   `json:"benefit_summary"`
	EligibilitySummary string   `json:"eligibility_summary"`
	RequiredDocuments  []string `json:"required_data_or_documents"`
	WhyRelevant        string   `json:"why_relevant"`
	Confidence         string   `json:"confidence"`
	CvdrID             any      `json:"cvdr_id"`
	DocType            any      `json:"doc_type"`
}

// parseRankedItems turns a model response into a clean, ordered short-list.
// Models wrap JSON in prose or code fences more often than not, so parsing
// goes through repair and a bracket-extraction fallback before giving up
// with ErrRankingParse.
func parseRankedItems(response string, topK int) ([]core.RankedItem, error) {
	cleaned := stripCodeFences(response)
	cleaned = repairJSON(cleaned)

	var raw []rawRankedItem
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		// Fallback: extract the first bracketed array from surrounding prose.
		extracted, ok := extractArray(cleaned)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrRankingParse, err)
		}
		if err := json.Unmarshal([]byte(extracted), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRankingParse, err)
		}
	}

	items := make([]core.RankedItem, 0, len(raw))
	seenRanks := make(map[int]bool)
	for _, r := range raw {
		rank, ok := asInt(r.Rank)
		if !ok || rank < 1 {
			continue
		}
		// Duplicate ranks: keep the first occurrence.
		if seenRanks[rank] {
			continue
		}
		seenRanks[rank] = true

		score, _ := asFloat(r.Score)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		confidence := core.Confidence(strings.ToLower(strings.TrimSpace(r.Confidence)))
		if !confidence.Valid() {
			confidence = core.ConfidenceLow
		}

		item := core.RankedItem{
			Rank:               rank,
			Score:              score,
			Title:              r.Title,
			Municipality:       r.Municipality,
			Category:           r.Category,
			URL:                r.URL,
			BenefitSummary:     r.BenefitSummary,
			EligibilitySummary: r.EligibilitySummary,
			RequiredDocuments:  r.RequiredDocuments,
			WhyRelevant:        r.WhyRelevant,
			Confidence:         confidence,
		}
		if item.RequiredDocuments == nil {
			item.RequiredDocuments = []string{}
		}
		if year, ok := asInt(r.Year); ok {
			item.Year = &year
		}
		if s, ok := asOptionalString(r.CvdrID); ok {
			item.CvdrID = &s
		}
		if s, ok := asOptionalString(r.DocType); ok {
			item.DocType = &s
		}

		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rank < items[j].Rank
	})

	if topK > 0 && len(items) > topK {
		items = items[:topK]
	}

	return items, nil
}

// stripCodeFences removes a surrounding markdown code fence if present.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop a language tag such as "json" on the fence line.
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		first := strings.TrimSpace(trimmed[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "[{") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// extractArray returns the substring from the first '[' to the last ']'.
func extractArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	end := strings.LastIndexByte(s, ']')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "null") {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
		return 0, false
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// asOptionalString maps null, "" and "null" to absent.
func asOptionalString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return "", false
	}
	return s, true
}
