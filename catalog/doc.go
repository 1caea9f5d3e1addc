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


// Package catalog loads the municipal regulation catalog and provides
// municipality matching over it.
//
// The catalog is a tabular CSV file loaded once at process start. Its schema
// is tolerant: rows are accessed through the Row type, whose accessors
// return safe defaults for absent or malformed cells instead of failing.
// Only a catalog that cannot be loaded at all is an error (ErrCatalogLoad).
//
// Municipality matching is staged: exact match on the normalized name, then
// substring containment, then fuzzy suggestions drawn from the precomputed
// distinct municipality set. A miss is represented as an empty result plus
// suggestions, never as an error, so callers can ask the user to
// disambiguate.
//
// # Thread Safety
//
// A Store is immutable after Load and safe for concurrent readers without
// locking. Catalog updates happen only by re-ingesting offline and
// restarting the process.
package catalog
