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


// Package ragindex builds and queries the embedding index over the
// knowledge corpus that grounds the assistant's answers.
//
// Building is a batch operation: documents are cleaned and split into
// overlapping character windows, each window is embedded, and the
// unit-normalized vectors go into a flat inner-product index. The index
// persists as two row-aligned files, a binary vector matrix and a JSON
// chunk metadata file. Loading is strict: a missing or inconsistent pair
// is ErrIndexNotBuilt, never a silently empty index.
//
// Retrieval embeds the query with the same model family that built the
// index and returns the best-scoring chunks. Scores are cosine
// similarities because every stored vector is unit length.
package ragindex
