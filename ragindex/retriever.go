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
	"context"
	"fmt"
	"log/slog"

	"github.com/steunwijzer/steunwijzer/ai"
	"github.com/steunwijzer/steunwijzer/core"
)

// DefaultTopK is the retrieval depth when the caller does not override it.
const DefaultTopK = 5

// Retriever answers similarity queries against a built index.
type Retriever struct {
	index    *Index
	embedder ai.Embedder
	logger   *slog.Logger
}

// NewRetriever creates a retriever over a built index.
func NewRetriever(index *Index, embedder ai.Embedder) (*Retriever, error) {
	if index == nil {
		return nil, ErrIndexNotBuilt
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	return &Retriever{
		index:    index,
		embedder: embedder,
		logger:   slog.Default().With("component", "ragindex-retriever"),
	}, nil
}

// OpenRetriever loads a persisted index from dir and wraps it in a retriever.
func OpenRetriever(dir string, embedder ai.Embedder) (*Retriever, error) {
	index, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return NewRetriever(index, embedder)
}

// Retrieve embeds the query and returns the topK best-matching chunks,
// best first. topK <= 0 uses DefaultTopK. Embedding failures are wrapped
// in ErrEmbedding so the caller can degrade to an answer without sources.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]core.RetrievalHit, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Warn("query embedding failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}

	hits, err := r.index.Search(vector, topK)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("retrieval complete", "hits", len(hits), "topK", topK)
	return hits, nil
}

// Index exposes the underlying index, mainly for maintenance commands.
func (r *Retriever) Index() *Index {
	return r.index
}
