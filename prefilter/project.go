package prefilter

import (
	"github.com/steunwijzer/steunwijzer/catalog"
	"github.com/steunwijzer/steunwijzer/core"
)

// Project maps prefiltered rows into the compact candidate records handed
// to the ranking oracle. Only the whitelisted fields below are exposed;
// everything else in the catalog stays behind this boundary, both to keep
// the oracle payload small and to avoid leaking columns the oracle has no
// business seeing.
func Project(rows []catalog.Row) []core.Candidate {
	out := make([]core.Candidate, len(rows))
	for i, row := range rows {
		c := core.Candidate{
			Title:                  row.Field(catalog.ColTitle),
			Municipality:           row.Field(catalog.ColMunicipality),
			Category:               row.Field(catalog.ColCategory),
			DocType:                row.Field(catalog.ColDocType),
			BenefitSignals:         row.Signals(catalog.ColBenefitSignals),
			EligibilitySignals:     row.Signals(catalog.ColEligibilitySignals),
			ApplicationDataSignals: row.Signals(catalog.ColApplicationDataSignals),
			EligibilitySnippet:     row.Field(catalog.ColEligibilitySnippet),
			ApplicationSnippet:     row.Field(catalog.ColApplicationSnippet),
			URL:                    row.Field(catalog.ColURL),
			CvdrID:                 row.Field(catalog.ColCvdrID),
		}
		if year, ok := row.Year(); ok {
			c.Year = &year
		}
		out[i] = c
	}
	return out
}
