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
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/steunwijzer/steunwijzer/ai"
	"github.com/steunwijzer/steunwijzer/core"
)

// Document is one source file of the knowledge corpus.
type Document struct {
	Source string // path relative to the corpus root
	Text   string
}

// LoadDocuments reads every .txt and .md file under dir, recursively, in
// sorted path order. Any other file type fails the load so that a stray
// PDF is noticed at build time instead of silently skipped.
func LoadDocuments(dir string) ([]Document, error) {
	var docs []Document
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".md":
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			docs = append(docs, Document{Source: filepath.ToSlash(rel), Text: string(data)})
			return nil
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedFile, rel)
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Source < docs[j].Source
	})
	return docs, nil
}

// Builder chunks documents, embeds the chunks and assembles an Index.
// Documents are embedded concurrently on a worker pool; assembly is
// deterministic regardless of completion order.
type Builder struct {
	embedder ai.Embedder
	chunker  *Chunker
	poolSize int
	logger   *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder) error

// WithChunker overrides the default chunking parameters.
func WithChunker(c *Chunker) BuilderOption {
	return func(b *Builder) error {
		if c == nil {
			return ErrInvalidChunking
		}
		b.chunker = c
		return nil
	}
}

// WithPoolSize sets the number of documents embedded concurrently.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuilderOption {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		b.poolSize = size
		return nil
	}
}

// WithBuilderLogger sets a custom logger.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates an index builder backed by the given embedder.
func NewBuilder(embedder ai.Embedder, opts ...BuilderOption) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	b := &Builder{
		embedder: embedder,
		chunker:  DefaultChunker(),
		poolSize: poolSize,
		logger:   slog.Default().With("component", "ragindex-builder"),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Build chunks and embeds the documents and returns a ready index. The
// first embedding failure aborts the build; a partially embedded corpus
// would silently degrade retrieval.
func (b *Builder) Build(ctx context.Context, docs []Document) (*Index, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	type docResult struct {
		chunks  []core.Chunk
		vectors [][]float32
		err     error
	}

	pool, err := ants.NewPool(b.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]docResult, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			doc := docs[i]
			chunks := b.chunker.Chunk(doc.Source, doc.Text)
			if len(chunks) == 0 {
				return
			}

			texts := make([]string, len(chunks))
			for j, c := range chunks {
				texts[j] = c.Text
			}

			vectors, err := b.embedder.EmbedTexts(ctx, texts)
			if err != nil {
				results[i].err = fmt.Errorf("%w: %s: %v", ErrEmbedding, doc.Source, err)
				return
			}
			results[i] = docResult{chunks: chunks, vectors: vectors}
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return nil, submitErr
		}
	}
	wg.Wait()

	// Assemble in document order so the index is deterministic.
	var index *Index
	total := 0
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		for j, chunk := range r.chunks {
			if index == nil {
				ix, err := NewIndex(len(r.vectors[j]))
				if err != nil {
					return nil, err
				}
				index = ix
			}
			if err := index.Add(chunk, r.vectors[j]); err != nil {
				return nil, err
			}
			total++
		}
	}
	if index == nil {
		return nil, ErrNoDocuments
	}

	b.logger.Info("index built", "documents", len(docs), "chunks", total, "dim", index.Dim())
	return index, nil
}
