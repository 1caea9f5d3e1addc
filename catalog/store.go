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

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/steunwijzer/steunwijzer/core"
)

// Well-known catalog columns. The schema is tolerant: any of these may be
// absent from a given catalog file and Row accessors fall back to safe
// defaults.
const (
	ColTitle                  = "title"
	ColURL                    = "url"
	ColMunicipality           = "municipality"
	ColCategory               = "category"
	ColYear                   = "year"
	ColDocType                = "doc_type"
	ColCvdrID                 = "cvdr_id"
	ColSingleParentRelevant   = "single_parent_relevant"
	ColMentionsSingleParent   = "mentions_single_parent_explicitly"
	ColSingleParentSignals    = "single_parent_signals"
	ColBenefitSignals         = "benefit_signals"
	ColEligibilitySignals     = "eligibility_signals"
	ColApplicationDataSignals = "application_data_signals"
	ColEligibilitySnippet     = "eligibility_snippet"
	ColApplicationSnippet     = "application_snippet"
)

// Store holds the regulation catalog in memory. It is loaded once at process
// start and treated as read-only shared state afterwards, so concurrent
// reads need no locking.
type Store struct {
	header         map[string]int
	records        [][]string
	municipalities []string // distinct normalized municipality names, sorted
	logger         *slog.Logger
}

// Row is a lightweight view over one catalog record. Accessors degrade
// gracefully when the underlying column is absent or empty.
type Row struct {
	store *Store
	index int
}

// Load reads the catalog CSV at path into memory. The first record is the
// header; column order is arbitrary. A load failure wraps ErrCatalogLoad
// and is fatal for the process per the error taxonomy.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogLoad, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses catalog CSV data from r. Exposed separately from Load so
// callers can feed embedded or in-memory catalogs.
func Read(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows shorter than the header are tolerated

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogLoad, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrCatalogLoad, ErrMissingHeader)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	s := &Store{
		header:  header,
		records: records[1:],
		logger:  slog.Default().With("component", "catalog"),
	}
	s.municipalities = s.distinctMunicipalities()

	s.logger.Debug("catalog loaded", "rows", len(s.records), "municipalities", len(s.municipalities))
	return s, nil
}

// Len returns the number of regulation rows in the catalog.
func (s *Store) Len() int {
	return len(s.records)
}

// Rows returns a view over every catalog row, in file order.
func (s *Store) Rows() []Row {
	rows := make([]Row, len(s.records))
	for i := range s.records {
		rows[i] = Row{store: s, index: i}
	}
	return rows
}

// Municipalities returns the distinct normalized municipality names present
// in the catalog, sorted. Precomputed at load time; callers must not mutate.
func (s *Store) Municipalities() []string {
	return s.municipalities
}

func (s *Store) distinctMunicipalities() []string {
	seen := make(map[string]bool)
	for i := range s.records {
		m := NormalizeMunicipality(Row{store: s, index: i}.Field(ColMunicipality))
		if m != "" {
			seen[m] = true
		}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Index returns the row's position in the original catalog, used as the
// stable tie-break during prefilter sorting.
func (r Row) Index() int {
	return r.index
}

// ID returns a deterministic identity for the row derived from its CVDR
// identifier when present, otherwise from URL and title.
func (r Row) ID() core.ID {
	if id := r.Field(ColCvdrID); id != "" {
		return core.IDFromContent(id)
	}
	return core.IDFromContent(r.Field(ColURL) + "\x00" + r.Field(ColTitle))
}

// Field returns the raw cell value for col, or "" when the column is absent
// from the catalog or the row is shorter than the header.
func (r Row) Field(col string) string {
	idx, ok := r.store.header[col]
	if !ok {
		return ""
	}
	record := r.store.records[r.index]
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// Bool interprets the cell as a boolean flag. Accepts 1/true/yes/y in any
// case; everything else (including an absent column) is false.
func (r Row) Bool(col string) bool {
	switch strings.ToLower(r.Field(col)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// Signals parses a comma-separated signal cell into a normalized list:
// entries are trimmed, lowercased, and empty entries dropped.
func (r Row) Signals(col string) []string {
	raw := r.Field(col)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Year parses the year column. The second return value is false for absent
// or non-numeric years; a malformed year never raises an error.
func (r Row) Year() (int, bool) {
	y, err := strconv.Atoi(r.Field(ColYear))
	if err != nil {
		return 0, false
	}
	return y, true
}
