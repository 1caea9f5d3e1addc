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

	"github.com/steunwijzer/steunwijzer/core"
)

// systemPrompt instructs the model to rank candidates and to ground every
// statement in the provided fields. The output contract is a bare JSON array.
const systemPrompt = "You are a careful assistant that helps people find municipal support/subsidies in the Netherlands. " +
	"You will be given a user profile and candidate regulation summaries/snippets. " +
	"Rank the candidates by likely applicability and usefulness for this user. " +
	"Do NOT hallucinate details. If eligibility requirements are not clearly stated in the snippet, say 'unknown'. " +
	"Prefer more recent rules if everything else is equal.\n\n" +
	"Return ONLY valid JSON as a list of objects with fields:\n" +
	"rank (int), score (0-100 float), title (string), municipality (string), category (string), year (int|null), url (string),\n" +
	"benefit_summary (string), eligibility_summary (string), required_data_or_documents (array of strings), why_relevant (string), confidence ('high'|'medium'|'low'),\n" +
	"cvdr_id (string|null), doc_type (string|null)."

// promptInstructions is embedded in the user payload alongside the profile
// and candidates so that the output contract travels with the data.
type promptInstructions struct {
	OutputFormat  string `json:"output_format"`
	MaxResults    int    `json:"max_results"`
	RankingGoal   string `json:"ranking_goal"`
	GroundingRule string `json:"grounding_rule"`
}

type promptPayload struct {
	UserProfile  *core.UserProfile  `json:"user_profile"`
	Candidates   []core.Candidate   `json:"candidates"`
	Instructions promptInstructions `json:"instructions"`
}

// buildUserPrompt serializes the profile and candidates into the user message.
func buildUserPrompt(candidates []core.Candidate, profile *core.UserProfile, topK int) (string, error) {
	payload := promptPayload{
		UserProfile: profile,
		Candidates:  candidates,
		Instructions: promptInstructions{
			OutputFormat:  "json",
			MaxResults:    topK,
			RankingGoal:   "Most likely applicable and valuable support/subsidies for the user",
			GroundingRule: "Use only the provided fields/snippets; if uncertain, say so.",
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize ranking payload: %w", err)
	}

	return "Here is the data:\n" + string(data), nil
}
