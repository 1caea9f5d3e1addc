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
	"sort"
	"sync"

	"github.com/steunwijzer/steunwijzer/core"
)

// deletedSlot marks a logically removed vector. Deleted slots keep their
// position so that slot numbers of surviving vectors remain stable.
const deletedSlot = -1

// Index is a flat inner-product vector index over document chunks.
// Vectors are stored unit-normalized; search is an exhaustive scan, which
// is plenty for a corpus of a few thousand chunks. Safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	dim     int
	vectors [][]float32
	slots   []int // slot -> chunk ordinal, deletedSlot when removed
	chunks  []core.Chunk
}

// NewIndex creates an empty index with the given vector dimension.
func NewIndex(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dim=%d", ErrDimensionMismatch, dim)
	}
	return &Index{dim: dim}, nil
}

// Add appends a chunk and its vector. The vector is normalized on the way in.
func (ix *Index) Add(chunk core.Chunk, vector []float32) error {
	if err := core.ValidateChunk(&chunk); err != nil {
		return err
	}
	if len(vector) != ix.dim {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vector), ix.dim)
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.vectors = append(ix.vectors, NormalizeVector(vector))
	ix.slots = append(ix.slots, len(ix.chunks))
	ix.chunks = append(ix.chunks, chunk)
	return nil
}

// Delete logically removes the chunk with the given ID. Searches skip
// deleted slots. Returns false if no live chunk has that ID.
func (ix *Index) Delete(chunkID string) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	for slot, ord := range ix.slots {
		if ord == deletedSlot {
			continue
		}
		if ix.chunks[ord].ID == chunkID {
			ix.slots[slot] = deletedSlot
			return true
		}
	}
	return false
}

// Search returns the topK most similar chunks to the query vector, best
// first. The query is normalized, so scores are cosine similarities.
func (ix *Index) Search(query []float32, topK int) ([]core.RetrievalHit, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(query), ix.dim)
	}
	if topK <= 0 {
		return []core.RetrievalHit{}, nil
	}

	q := NormalizeVector(query)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	type scored struct {
		score float32
		ord   int
	}
	results := make([]scored, 0, len(ix.vectors))
	for slot, vec := range ix.vectors {
		ord := ix.slots[slot]
		if ord == deletedSlot {
			continue
		}
		results = append(results, scored{score: Dot(q, vec), ord: ord})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > topK {
		results = results[:topK]
	}

	hits := make([]core.RetrievalHit, len(results))
	for i, r := range results {
		chunk := ix.chunks[r.ord]
		hits[i] = core.RetrievalHit{
			Score:   r.score,
			Source:  chunk.Source,
			ChunkID: chunk.ID,
			Text:    chunk.Text,
		}
	}
	return hits, nil
}

// Len returns the number of live vectors.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	n := 0
	for _, ord := range ix.slots {
		if ord != deletedSlot {
			n++
		}
	}
	return n
}

// Dim returns the vector dimension.
func (ix *Index) Dim() int {
	return ix.dim
}

// snapshot copies the live vectors and chunks in slot order for persistence.
func (ix *Index) snapshot() (core.VectorSet, []core.Chunk) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	set := core.VectorSet{Dim: ix.dim}
	var chunks []core.Chunk
	for slot, ord := range ix.slots {
		if ord == deletedSlot {
			continue
		}
		set.Vectors = append(set.Vectors, ix.vectors[slot])
		chunks = append(chunks, ix.chunks[ord])
	}
	return set, chunks
}
