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

import "errors"

var (
	// ErrRankingParse indicates the model response could not be parsed as a
	// JSON array of ranked items, even after repair and fallback extraction.
	// This error is fatal for the request and is never retried.
	ErrRankingParse = errors.New("ranking response is not a valid JSON array")

	// ErrNilCompleter indicates the oracle was constructed without a completer.
	ErrNilCompleter = errors.New("completer cannot be nil")

	// ErrInvalidMaxAttempts indicates a retry configuration with no attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
