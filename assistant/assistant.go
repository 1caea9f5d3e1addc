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


package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/steunwijzer/steunwijzer/catalog"
	"github.com/steunwijzer/steunwijzer/core"
	"github.com/steunwijzer/steunwijzer/prefilter"
	"github.com/steunwijzer/steunwijzer/ragindex"
	"github.com/steunwijzer/steunwijzer/ranking"
	"github.com/steunwijzer/steunwijzer/storage"
)

// Mode distinguishes a turn that is still collecting profile data from one
// that produced a ranked short-list.
type Mode string

const (
	ModeIntake  Mode = "intake"
	ModeResults Mode = "results"
)

// Profile fields the intake must collect before ranking makes sense.
const (
	FieldMunicipality = "municipality"
	FieldChildren     = "children_u18"
	FieldIncome       = "net_income_monthly_eur"
)

// fieldQuestions maps a missing profile field to the question asked for it.
var fieldQuestions = map[string]string{
	FieldMunicipality: "Which municipality do you live in?",
	FieldChildren:     "How many children under 18 live with you?",
	FieldIncome:       "A rough estimate is enough. About how much is your monthly net income?",
}

// fieldOrder fixes which question is asked first.
var fieldOrder = []string{FieldMunicipality, FieldChildren, FieldIncome}

// Response is the result of one assistant turn.
type Response struct {
	Reply         string              `json:"reply"`
	Profile       core.UserProfile    `json:"profile"`
	Mode          Mode                `json:"mode"`
	Schemes       []core.RankedItem   `json:"schemes"`
	MissingFields []string            `json:"missing_fields"`
	Sources       []core.RetrievalHit `json:"sources"`
}

// Assistant composes the intake, prefilter, ranking and retrieval stages
// into a conversational turn. The catalog store and oracle are required;
// sessions and retrieval are optional and degrade gracefully when absent.
type Assistant struct {
	store     *catalog.Store
	oracle    *ranking.Oracle
	retriever *ragindex.Retriever
	sessions  storage.SessionRepository
	pfOpts    prefilter.Options
	topK      int
	logger    *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithRetriever attaches a knowledge-corpus retriever. Without one,
// responses carry no sources.
func WithRetriever(r *ragindex.Retriever) Option {
	return func(a *Assistant) {
		a.retriever = r
	}
}

// WithSessions attaches a session repository so profiles survive restarts.
func WithSessions(repo storage.SessionRepository) Option {
	return func(a *Assistant) {
		a.sessions = repo
	}
}

// WithPrefilterOptions overrides the default prefilter configuration.
func WithPrefilterOptions(opts prefilter.Options) Option {
	return func(a *Assistant) {
		a.pfOpts = opts
	}
}

// WithTopK sets the short-list length.
func WithTopK(topK int) Option {
	return func(a *Assistant) {
		if topK > 0 {
			a.topK = topK
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger.With("component", "assistant")
	}
}

var (
	// ErrStoreRequired indicates an assistant constructed without a catalog.
	ErrStoreRequired = errors.New("catalog store cannot be nil")
	// ErrOracleRequired indicates an assistant constructed without an oracle.
	ErrOracleRequired = errors.New("ranking oracle cannot be nil")
)

// New creates an assistant over the given catalog store and ranking oracle.
func New(store *catalog.Store, oracle *ranking.Oracle, opts ...Option) (*Assistant, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if oracle == nil {
		return nil, ErrOracleRequired
	}

	a := &Assistant{
		store:  store,
		oracle: oracle,
		pfOpts: prefilter.DefaultOptions(),
		topK:   ranking.DefaultTopK,
		logger: slog.Default().With("component", "assistant"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Respond handles one turn. The update carries whatever profile data the
// intake layer extracted from the user's message; it is merged into the
// stored session profile. While required fields are missing the turn stays
// in intake mode and asks for the first missing field. Once the profile is
// complete, candidates are prefiltered, ranked, and grounded with corpus
// retrieval for the question text.
func (a *Assistant) Respond(ctx context.Context, sessionID string, update *core.UserProfile, question string) (*Response, error) {
	if update != nil {
		if err := core.ValidateProfile(update); err != nil {
			return nil, err
		}
	}

	profile, err := a.loadProfile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	mergeProfile(profile, update)

	if err := a.saveProfile(ctx, sessionID, profile); err != nil {
		return nil, err
	}

	resp := &Response{
		Profile:       *profile,
		Schemes:       []core.RankedItem{},
		MissingFields: []string{},
		Sources:       []core.RetrievalHit{},
	}

	missing := missingFields(profile)
	if len(missing) > 0 {
		resp.Mode = ModeIntake
		resp.MissingFields = missing
		resp.Reply = fieldQuestions[missing[0]]
		return resp, nil
	}

	resp.Mode = ModeResults

	rows, suggestions := prefilter.Prefilter(a.store, *profile, a.pfOpts)
	if len(rows) == 0 {
		resp.Reply = noMatchReply(profile.Municipality, suggestions)
		return resp, nil
	}

	candidates := prefilter.Project(rows)
	ranked, err := a.oracle.Rank(ctx, candidates, profile, a.topK)
	if err != nil {
		return nil, err
	}
	resp.Schemes = ranked

	degraded := a.attachSources(ctx, resp, question)

	resp.Reply = resultsReply(ranked)
	if degraded {
		resp.Reply += "\n\nNo sources found: the knowledge base could not be searched for this answer."
	}
	return resp, nil
}

// attachSources runs corpus retrieval for the question. Retrieval is
// best-effort: an embedding outage downgrades the answer to one without
// sources instead of failing the turn. It reports true when retrieval was
// attempted but failed, so the reply can say that no sources were found.
func (a *Assistant) attachSources(ctx context.Context, resp *Response, question string) bool {
	if a.retriever == nil || strings.TrimSpace(question) == "" {
		return false
	}

	hits, err := a.retriever.Retrieve(ctx, question, ragindex.DefaultTopK)
	if err != nil {
		a.logger.Warn("retrieval degraded, answering without sources", "err", err)
		return true
	}
	resp.Sources = hits
	return false
}

func (a *Assistant) loadProfile(ctx context.Context, sessionID string) (*core.UserProfile, error) {
	if a.sessions == nil || sessionID == "" {
		return &core.UserProfile{}, nil
	}

	record, err := a.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &core.UserProfile{}, nil
		}
		return nil, err
	}
	profile := record.Profile
	return &profile, nil
}

func (a *Assistant) saveProfile(ctx context.Context, sessionID string, profile *core.UserProfile) error {
	if a.sessions == nil || sessionID == "" {
		return nil
	}
	return a.sessions.PutSession(ctx, &core.SessionRecord{
		SessionID: sessionID,
		Profile:   *profile,
	})
}

// mergeProfile folds the extracted update into the stored profile. Absent
// values (nil pointers, empty municipality) never erase earlier answers,
// and single-parent status sticks once stated.
func mergeProfile(dst, src *core.UserProfile) {
	if src == nil {
		return
	}
	if src.IsSingleParent {
		dst.IsSingleParent = true
	}
	if src.ChildrenU18 != nil {
		dst.ChildrenU18 = src.ChildrenU18
	}
	if src.NetIncomeMonthlyEUR != nil {
		dst.NetIncomeMonthlyEUR = src.NetIncomeMonthlyEUR
	}
	if src.AssetsSavingsEUR != nil {
		dst.AssetsSavingsEUR = src.AssetsSavingsEUR
	}
	if src.Municipality != "" {
		dst.Municipality = src.Municipality
	}
}

// missingFields lists required profile fields not yet collected, in the
// order their questions should be asked.
func missingFields(profile *core.UserProfile) []string {
	var missing []string
	for _, field := range fieldOrder {
		switch field {
		case FieldMunicipality:
			if strings.TrimSpace(profile.Municipality) == "" {
				missing = append(missing, field)
			}
		case FieldChildren:
			if profile.ChildrenU18 == nil {
				missing = append(missing, field)
			}
		case FieldIncome:
			if profile.NetIncomeMonthlyEUR == nil {
				missing = append(missing, field)
			}
		}
	}
	return missing
}

func noMatchReply(municipality string, suggestions []string) string {
	if len(suggestions) > 0 {
		return fmt.Sprintf(
			"I could not find regulations for %q. Did you mean one of: %s?",
			municipality, strings.Join(suggestions, ", "))
	}
	return fmt.Sprintf(
		"I could not find any matching regulations for %q. "+
			"Please check the municipality name or try a nearby municipality.",
		municipality)
}

func resultsReply(ranked []core.RankedItem) string {
	if len(ranked) == 0 {
		return "I found candidate regulations but none could be ranked for your situation."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d support options that may apply to you:\n", len(ranked))
	for _, item := range ranked {
		fmt.Fprintf(&b, "%d. %s (%s)", item.Rank, item.Title, item.Municipality)
		if item.WhyRelevant != "" {
			fmt.Fprintf(&b, " - %s", item.WhyRelevant)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
