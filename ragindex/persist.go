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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/steunwijzer/steunwijzer/core"
)

const (
	// VectorsFile holds the binary vector matrix.
	VectorsFile = "vectors.mus"
	// MetadataFile holds the chunk metadata, row-aligned with the vectors.
	MetadataFile = "metadata.json"
)

// Save writes the index to dir as a vector file and a metadata file.
// Rows of the two files correspond by position.
func Save(ix *Index, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	set, chunks := ix.snapshot()

	buf := make([]byte, core.VectorSetMUS.Size(set))
	core.VectorSetMUS.Marshal(set, buf)
	if err := os.WriteFile(filepath.Join(dir, VectorsFile), buf, 0644); err != nil {
		return err
	}

	meta, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, MetadataFile), meta, 0644)
}

// Load reads a persisted index from dir. Missing or inconsistent files
// yield ErrIndexNotBuilt; the caller is expected to surface "run the index
// build first" rather than degrade silently.
func Load(dir string) (*Index, error) {
	vecData, err := os.ReadFile(filepath.Join(dir, VectorsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotBuilt, err)
	}
	metaData, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotBuilt, err)
	}

	set, _, err := core.VectorSetMUS.Unmarshal(vecData)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt vector file: %v", ErrIndexNotBuilt, err)
	}

	var chunks []core.Chunk
	if err := json.Unmarshal(metaData, &chunks); err != nil {
		return nil, fmt.Errorf("%w: corrupt metadata file: %v", ErrIndexNotBuilt, err)
	}

	if len(chunks) != len(set.Vectors) {
		return nil, fmt.Errorf("%w: %d vectors but %d chunks", ErrIndexNotBuilt, len(set.Vectors), len(chunks))
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: index is empty", ErrIndexNotBuilt)
	}

	ix, err := NewIndex(set.Dim)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotBuilt, err)
	}
	for i, chunk := range chunks {
		if err := ix.Add(chunk, set.Vectors[i]); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrIndexNotBuilt, i, err)
		}
	}
	return ix, nil
}
