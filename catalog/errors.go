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


package catalog

import "errors"

var (
	// ErrCatalogLoad indicates the catalog file could not be read or parsed.
	// Fatal at startup; the process cannot serve ranking requests without
	// a catalog.
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrMissingHeader indicates the catalog file has no header record.
	ErrMissingHeader = errors.New("catalog has no header record")
)
