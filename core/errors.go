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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRankedItem indicates a RankedItem failed validation.
	ErrInvalidRankedItem = errors.New("invalid ranked item")

	// ErrInvalidRank indicates a rank value below 1.
	ErrInvalidRank = errors.New("rank must be at least 1")

	// ErrScoreOutOfRange indicates a score outside the 0-100 range.
	ErrScoreOutOfRange = errors.New("score must be between 0 and 100")

	// ErrInvalidConfidence indicates an unknown confidence level.
	ErrInvalidConfidence = errors.New("invalid confidence level")

	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyChunkID indicates the chunk ID field is empty.
	ErrEmptyChunkID = errors.New("chunk id cannot be empty")

	// ErrInvalidChunkBounds indicates StartChar is not below EndChar.
	ErrInvalidChunkBounds = errors.New("chunk start must be below chunk end")

	// ErrNegativeChildren indicates a negative children count.
	ErrNegativeChildren = errors.New("children count cannot be negative")

	// ErrInvalidProfile indicates a UserProfile failed validation.
	ErrInvalidProfile = errors.New("invalid user profile")
)
