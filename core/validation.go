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


package core

import "fmt"

// ValidateProfile validates a UserProfile according to domain rules.
//
// Validation rules:
//   - ChildrenU18, when present, must not be negative
//
// NOT validated (intake fills these in over time):
//   - Municipality (may be empty until the intake collects it)
//   - Income and assets (nil means "not yet answered")
func ValidateProfile(profile *UserProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.ChildrenU18 != nil && *profile.ChildrenU18 < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrNegativeChildren)
	}

	return nil
}

// ValidateRankedItem validates a RankedItem according to domain rules.
//
// Validation rules:
//   - Rank must be at least 1
//   - Score must be within [0, 100]
//   - Confidence must be one of high, medium, low
func ValidateRankedItem(item *RankedItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidRankedItem)
	}

	if item.Rank < 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidRankedItem, ErrInvalidRank, item.Rank)
	}

	if item.Score < 0 || item.Score > 100 {
		return fmt.Errorf("%w: %w (got %g)", ErrInvalidRankedItem, ErrScoreOutOfRange, item.Score)
	}

	if !item.Confidence.Valid() {
		return fmt.Errorf("%w: %w (got %q)", ErrInvalidRankedItem, ErrInvalidConfidence, item.Confidence)
	}

	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - StartChar must be strictly below EndChar
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkID)
	}

	if chunk.StartChar >= chunk.EndChar {
		return fmt.Errorf("%w: %w (start=%d end=%d)", ErrInvalidChunk, ErrInvalidChunkBounds, chunk.StartChar, chunk.EndChar)
	}

	return nil
}
