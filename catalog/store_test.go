package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `title,url,municipality,category,year,doc_type,single_parent_relevant,mentions_single_parent_explicitly,single_parent_signals,benefit_signals,eligibility_signals,application_data_signals,eligibility_snippet,application_snippet,cvdr_id
Verordening individuele inkomenstoeslag,https://example.org/1,Utrecht,inkomen,2025,regeling,true,false,"alleenstaande ouder, eenouder","inkomenstoeslag, participatie",laag inkomen,bsn,Snippet A,Snippet B,CVDR1001
Subsidie kinderopvang,https://example.org/2,Utrecht,jeugd,2024,regeling,false,true,,kinderopvang,,,Snippet C,,CVDR1002
Beleidsregels bijzondere bijstand,https://example.org/3,Delft,inkomen,2023,beleidsregel,true,false,eenouder,bijzondere bijstand,vermogen,inkomensgegevens,,,CVDR1003
Tegemoetkoming schoolkosten,https://example.org/4,Delft,onderwijs,onbekend,regeling,false,false,,schoolkosten,,,,,CVDR1004
Participatieregeling,https://example.org/5,Gemeente Delft,participatie,2022,regeling,false,false,,participatie,,,,,
`

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Read(strings.NewReader(testCatalog))
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	t.Run("missing file wraps ErrCatalogLoad", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, ErrCatalogLoad)
	})

	t.Run("loads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 5, s.Len())
	})

	t.Run("empty file has no header", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrCatalogLoad)
		assert.True(t, errors.Is(err, ErrMissingHeader))
	})
}

func TestRowAccessors(t *testing.T) {
	s := testStore(t)
	rows := s.Rows()

	t.Run("field", func(t *testing.T) {
		assert.Equal(t, "Utrecht", rows[0].Field(ColMunicipality))
		assert.Equal(t, "", rows[0].Field("no_such_column"))
	})

	t.Run("bool variants", func(t *testing.T) {
		assert.True(t, rows[0].Bool(ColSingleParentRelevant))
		assert.True(t, rows[1].Bool(ColMentionsSingleParent))
		assert.False(t, rows[1].Bool(ColSingleParentRelevant))
		assert.False(t, rows[0].Bool("absent"))
	})

	t.Run("signals normalized", func(t *testing.T) {
		assert.Equal(t, []string{"alleenstaande ouder", "eenouder"}, rows[0].Signals(ColSingleParentSignals))
		assert.Nil(t, rows[1].Signals(ColSingleParentSignals))
	})

	t.Run("year parsing never errors", func(t *testing.T) {
		y, ok := rows[0].Year()
		assert.True(t, ok)
		assert.Equal(t, 2025, y)

		_, ok = rows[3].Year() // "onbekend"
		assert.False(t, ok)
	})

	t.Run("content id is stable", func(t *testing.T) {
		assert.Equal(t, rows[0].ID(), rows[0].ID())
		assert.NotEqual(t, rows[0].ID(), rows[1].ID())
		// row without cvdr_id falls back to url+title
		assert.NotZero(t, rows[4].ID())
	})
}

func TestMunicipalities(t *testing.T) {
	s := testStore(t)

	// "Gemeente Delft" normalizes into "delft", so only two distinct names.
	assert.Equal(t, []string{"delft", "utrecht"}, s.Municipalities())
}
