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

import "errors"

var (
	// ErrIndexNotBuilt indicates the persisted index files are missing or
	// inconsistent. The fix is rebuilding the index, never a silent fallback.
	ErrIndexNotBuilt = errors.New("embedding index not built")

	// ErrEmbedding wraps failures of the embedding backend during retrieval.
	ErrEmbedding = errors.New("embedding failed")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// index dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrUnsupportedFile indicates a file in the corpus directory with an
	// extension the loader does not handle.
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrNoDocuments indicates an empty corpus directory.
	ErrNoDocuments = errors.New("no documents found")

	// ErrEmbedderRequired indicates a builder or retriever constructed
	// without an embedder.
	ErrEmbedderRequired = errors.New("embedder cannot be nil")

	// ErrInvalidChunking indicates a chunker configured with a non-positive
	// window or an overlap at least as large as the window.
	ErrInvalidChunking = errors.New("invalid chunking configuration")
)
