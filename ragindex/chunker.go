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


package ragindex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/steunwijzer/steunwijzer/core"
)

const (
	// DefaultChunkChars is the character window size for chunking.
	DefaultChunkChars = 1800
	// DefaultChunkOverlap is how many characters consecutive windows share.
	DefaultChunkOverlap = 250
)

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes document text before chunking: line endings become
// LF, runs of spaces and tabs collapse to one space, and runs of three or
// more newlines collapse to a single blank line.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Chunker splits cleaned document text into overlapping character windows.
// Offsets in the produced chunks refer to the cleaned text.
type Chunker struct {
	chunkChars int
	overlap    int
}

// NewChunker creates a chunker. chunkChars must be positive and overlap
// must be non-negative and strictly smaller than chunkChars, otherwise the
// window would never advance.
func NewChunker(chunkChars, overlap int) (*Chunker, error) {
	if chunkChars <= 0 {
		return nil, fmt.Errorf("%w: chunkChars=%d", ErrInvalidChunking, chunkChars)
	}
	if overlap < 0 || overlap >= chunkChars {
		return nil, fmt.Errorf("%w: overlap=%d chunkChars=%d", ErrInvalidChunking, overlap, chunkChars)
	}
	return &Chunker{chunkChars: chunkChars, overlap: overlap}, nil
}

// DefaultChunker returns a chunker with the default window and overlap.
func DefaultChunker() *Chunker {
	c, _ := NewChunker(DefaultChunkChars, DefaultChunkOverlap)
	return c
}

// Chunk splits text into windows attributed to source. Whitespace-only
// windows are skipped and do not consume a chunk ordinal, so chunk IDs
// stay dense.
func (c *Chunker) Chunk(source, text string) []core.Chunk {
	cleaned := CleanText(text)
	runes := []rune(cleaned)
	n := len(runes)

	var chunks []core.Chunk
	start := 0
	idx := 0
	for start < n {
		end := start + c.chunkChars
		if end > n {
			end = n
		}

		body := strings.TrimSpace(string(runes[start:end]))
		if body != "" {
			chunks = append(chunks, core.Chunk{
				ID:        fmt.Sprintf("%s::chunk_%d", source, idx),
				Text:      body,
				Source:    source,
				StartChar: start,
				EndChar:   end,
			})
			idx++
		}

		if end >= n {
			break
		}
		start = end - c.overlap
		if start < 0 {
			start = 0
		}
	}

	return chunks
}
