package ranking

import (
	"testing"

	"github.com/steunwijzer/steunwijzer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validArray = `[
	{"rank": 2, "score": 61.5, "title": "Individuele inkomenstoeslag", "municipality": "Utrecht",
	 "category": "inkomensondersteuning", "year": 2024, "url": "https://example.org/iit",
	 "benefit_summary": "Jaarlijkse toeslag", "eligibility_summary": "Langdurig laag inkomen",
	 "required_data_or_documents": ["inkomensgegevens"], "why_relevant": "Laag inkomen in profiel",
	 "confidence": "medium", "cvdr_id": "CVDR2", "doc_type": "verordening"},
	{"rank": 1, "score": 87.0, "title": "Subsidie kinderopvang", "municipality": "Utrecht",
	 "category": "kinderopvang", "year": 2025, "url": "https://example.org/ko",
	 "benefit_summary": "Vergoeding kinderopvangkosten", "eligibility_summary": "Alleenstaande ouder",
	 "required_data_or_documents": ["inkomensgegevens", "inschrijving kinderopvang"],
	 "why_relevant": "Alleenstaande ouder met jong kind", "confidence": "high",
	 "cvdr_id": "CVDR1", "doc_type": "verordening"}
]`

func TestParseRankedItems_ValidArray(t *testing.T) {
	items, err := parseRankedItems(validArray, 15)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Re-sorted by ascending rank regardless of response order.
	assert.Equal(t, 1, items[0].Rank)
	assert.Equal(t, "Subsidie kinderopvang", items[0].Title)
	assert.Equal(t, core.ConfidenceHigh, items[0].Confidence)
	require.NotNil(t, items[0].Year)
	assert.Equal(t, 2025, *items[0].Year)
	require.NotNil(t, items[0].CvdrID)
	assert.Equal(t, "CVDR1", *items[0].CvdrID)

	assert.Equal(t, 2, items[1].Rank)
	assert.InDelta(t, 61.5, items[1].Score, 0.001)
}

func TestParseRankedItems_WrappedInProse(t *testing.T) {
	wrapped := "Here is the ranking you asked for:\n\n```json\n" + validArray + "\n```\nLet me know if you need more."
	items, err := parseRankedItems(wrapped, 15)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Rank)
}

func TestParseRankedItems_BracketFallback(t *testing.T) {
	// No fence, prose on both sides; only the bracket extraction can save it.
	wrapped := "Sure! " + validArray + " That's everything."
	items, err := parseRankedItems(wrapped, 15)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestParseRankedItems_Unparseable(t *testing.T) {
	_, err := parseRankedItems("I could not find any suitable subsidies for this user.", 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRankingParse)
}

func TestParseRankedItems_Coercion(t *testing.T) {
	// Ranks as strings, score out of range, missing confidence, null year.
	response := `[
		{"rank": "1", "score": 140, "title": "A", "year": null, "cvdr_id": "null"},
		{"rank": 1, "score": 50, "title": "duplicate of rank one"},
		{"rank": 3, "score": -10, "title": "C", "confidence": "HIGH", "doc_type": ""},
		{"rank": 0, "score": 10, "title": "invalid rank, dropped"}
	]`
	items, err := parseRankedItems(response, 15)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 1, items[0].Rank)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, 100.0, items[0].Score)
	assert.Equal(t, core.ConfidenceLow, items[0].Confidence)
	assert.Nil(t, items[0].Year)
	assert.Nil(t, items[0].CvdrID)
	assert.NotNil(t, items[0].RequiredDocuments)

	assert.Equal(t, 3, items[1].Rank)
	assert.Equal(t, 0.0, items[1].Score)
	assert.Equal(t, core.ConfidenceHigh, items[1].Confidence)
	assert.Nil(t, items[1].DocType)
}

func TestParseRankedItems_CapsAtTopK(t *testing.T) {
	response := `[
		{"rank": 1, "score": 90, "title": "A"},
		{"rank": 2, "score": 80, "title": "B"},
		{"rank": 3, "score": 70, "title": "C"}
	]`
	items, err := parseRankedItems(response, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, "B", items[1].Title)
}

func TestParseRankedItems_RepairedKeys(t *testing.T) {
	// Missing opening quote before a key, the damage repairJSON targets.
	response := `[{"rank": 1, score": 75, "title": "Repaired"}]`
	items, err := parseRankedItems(response, 15)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 75.0, items[0].Score, 0.001)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `[1]`, `[1]`},
		{"bare fence", "```\n[1]\n```", `[1]`},
		{"json fence", "```json\n[1]\n```", `[1]`},
		{"fence with surrounding whitespace", "  ```json\n[1]\n```  ", `[1]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.input))
		})
	}
}
