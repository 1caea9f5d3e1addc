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
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/steunwijzer/steunwijzer/ai"
	"github.com/steunwijzer/steunwijzer/core"
)

const (
	// DefaultTopK is the short-list length when the caller does not override it.
	DefaultTopK = 15

	defaultMaxAttempts = 3
	defaultRetryDelay  = 500 * time.Millisecond
)

// Oracle ranks prefiltered candidates with a chat model and parses the
// response into a clean short-list. The model sees only the whitelisted
// candidate projection, never raw catalog rows.
type Oracle struct {
	completer   ai.Completer
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// OracleOption configures an Oracle.
type OracleOption func(*Oracle)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) OracleOption {
	return func(o *Oracle) {
		o.logger = logger
	}
}

// WithMaxAttempts sets how many times a failed model call is attempted.
// Only transport failures are retried; parse failures never are.
func WithMaxAttempts(n int) OracleOption {
	return func(o *Oracle) {
		o.maxAttempts = n
	}
}

// WithRetryDelay sets the base delay between retry attempts.
func WithRetryDelay(d time.Duration) OracleOption {
	return func(o *Oracle) {
		o.retryDelay = d
	}
}

// NewOracle creates a ranking oracle backed by the given completer.
func NewOracle(completer ai.Completer, opts ...OracleOption) (*Oracle, error) {
	if completer == nil {
		return nil, ErrNilCompleter
	}

	o := &Oracle{
		completer:   completer,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		logger:      slog.Default().With("component", "ranking-oracle"),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}

	return o, nil
}

// Rank sends the candidates and profile to the model and returns at most
// topK items sorted by ascending rank. An empty candidate list returns an
// empty result without calling the model. topK <= 0 uses DefaultTopK.
//
// A response that cannot be parsed as a ranked list fails the request with
// ErrRankingParse; the call is not repeated, since a model that produced
// prose once will usually do it again and the caller needs to degrade.
func (o *Oracle) Rank(ctx context.Context, candidates []core.Candidate, profile *core.UserProfile, topK int) ([]core.RankedItem, error) {
	if err := core.ValidateProfile(profile); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []core.RankedItem{}, nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	userPrompt, err := buildUserPrompt(candidates, profile, topK)
	if err != nil {
		return nil, err
	}

	var response string
	err = retryWithBackoff(ctx, func() error {
		var callErr error
		response, callErr = o.completer.Complete(ctx, systemPrompt, userPrompt)
		return callErr
	}, o.maxAttempts, o.retryDelay)
	if err != nil {
		o.logger.Error("ranking call failed", "candidates", len(candidates), "err", err)
		return nil, err
	}

	items, err := parseRankedItems(response, topK)
	if err != nil {
		o.logger.Error("unparseable ranking response", "responseLen", len(response), "err", err)
		return nil, err
	}

	for i := range items {
		if err := core.ValidateRankedItem(&items[i]); err != nil {
			// Coercion clamps everything the validator checks, so a failure
			// here means the coercion rules and validator drifted apart.
			return nil, errors.Join(ErrRankingParse, err)
		}
	}

	o.logger.Debug("ranking complete", "candidates", len(candidates), "ranked", len(items))
	return items, nil
}
