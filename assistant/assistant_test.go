package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/steunwijzer/steunwijzer/ai/mock"
	"github.com/steunwijzer/steunwijzer/catalog"
	"github.com/steunwijzer/steunwijzer/core"
	"github.com/steunwijzer/steunwijzer/ragindex"
	"github.com/steunwijzer/steunwijzer/ranking"
	"github.com/steunwijzer/steunwijzer/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `title,url,municipality,category,year,doc_type,single_parent_relevant,mentions_single_parent_explicitly,single_parent_signals,benefit_signals,eligibility_signals,application_data_signals,eligibility_snippet,application_snippet,cvdr_id
Subsidie kinderopvang alleenstaande ouders,https://example.org/1,Utrecht,jeugd,2025,regeling,true,true,"alleenstaande ouder, eenouder",kinderopvang,laag inkomen,bsn,Snippet,Snippet,CVDR1
Verordening inkomenstoeslag,https://example.org/2,Utrecht,inkomen,2023,verordening,true,false,eenouder,inkomenstoeslag,laag inkomen,,,,CVDR2
Beleidsregels bijzondere bijstand,https://example.org/3,Delft,inkomen,2024,beleidsregel,true,false,,bijzondere bijstand,,,,,CVDR3
`

const rankedResponse = `[
	{"rank": 1, "score": 88, "title": "Subsidie kinderopvang alleenstaande ouders",
	 "municipality": "Utrecht", "category": "jeugd", "year": 2025,
	 "url": "https://example.org/1", "benefit_summary": "Vergoeding kinderopvang",
	 "eligibility_summary": "Alleenstaande ouder met laag inkomen",
	 "required_data_or_documents": ["bsn"], "why_relevant": "Matches single parent profile",
	 "confidence": "high", "cvdr_id": "CVDR1", "doc_type": "regeling"}
]`

func loadStore(t *testing.T) *catalog.Store {
	t.Helper()
	s, err := catalog.Read(strings.NewReader(testCatalog))
	require.NoError(t, err)
	return s
}

func rankingOracle(t *testing.T, response string) *ranking.Oracle {
	t.Helper()
	completer := mock.NewMockCompleter()
	completer.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return response, nil
	}
	oracle, err := ranking.NewOracle(completer)
	require.NoError(t, err)
	return oracle
}

func completeProfile() *core.UserProfile {
	children := 1
	income := 1600.0
	return &core.UserProfile{
		IsSingleParent:      true,
		ChildrenU18:         &children,
		NetIncomeMonthlyEUR: &income,
		Municipality:        "Utrecht",
	}
}

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a, err := New(loadStore(t), rankingOracle(t, "[]"))
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := New(nil, rankingOracle(t, "[]"))
		assert.Equal(t, ErrStoreRequired, err)
	})

	t.Run("nil oracle", func(t *testing.T) {
		_, err := New(loadStore(t), nil)
		assert.Equal(t, ErrOracleRequired, err)
	})
}

func TestRespond_IntakeAsksForMissingFields(t *testing.T) {
	a, err := New(loadStore(t), rankingOracle(t, rankedResponse))
	require.NoError(t, err)

	// Nothing known yet: first question is the municipality.
	resp, err := a.Respond(context.Background(), "", &core.UserProfile{IsSingleParent: true}, "hi")
	require.NoError(t, err)
	assert.Equal(t, ModeIntake, resp.Mode)
	assert.Equal(t, fieldQuestions[FieldMunicipality], resp.Reply)
	assert.Equal(t, []string{FieldMunicipality, FieldChildren, FieldIncome}, resp.MissingFields)
	assert.Empty(t, resp.Schemes)
}

func TestRespond_IntakeProgresses(t *testing.T) {
	a, err := New(loadStore(t), rankingOracle(t, rankedResponse))
	require.NoError(t, err)

	children := 1
	update := &core.UserProfile{Municipality: "Utrecht", ChildrenU18: &children}
	resp, err := a.Respond(context.Background(), "", update, "")
	require.NoError(t, err)
	assert.Equal(t, ModeIntake, resp.Mode)
	assert.Equal(t, []string{FieldIncome}, resp.MissingFields)
	assert.Equal(t, fieldQuestions[FieldIncome], resp.Reply)
}

func TestRespond_Results(t *testing.T) {
	a, err := New(loadStore(t), rankingOracle(t, rankedResponse))
	require.NoError(t, err)

	resp, err := a.Respond(context.Background(), "", completeProfile(), "help with childcare costs")
	require.NoError(t, err)

	assert.Equal(t, ModeResults, resp.Mode)
	assert.Empty(t, resp.MissingFields)
	require.Len(t, resp.Schemes, 1)
	assert.Equal(t, "Subsidie kinderopvang alleenstaande ouders", resp.Schemes[0].Title)
	assert.Contains(t, resp.Reply, "Subsidie kinderopvang alleenstaande ouders")
	assert.Empty(t, resp.Sources, "no retriever attached")
}

func TestRespond_MunicipalitySuggestions(t *testing.T) {
	a, err := New(loadStore(t), rankingOracle(t, rankedResponse))
	require.NoError(t, err)

	profile := completeProfile()
	profile.Municipality = "Utrecgt" // typo

	resp, err := a.Respond(context.Background(), "", profile, "")
	require.NoError(t, err)
	assert.Equal(t, ModeResults, resp.Mode)
	assert.Empty(t, resp.Schemes)
	assert.Contains(t, resp.Reply, "utrecht")
	assert.Contains(t, resp.Reply, "Did you mean")
}

func TestRespond_WithRetrieval(t *testing.T) {
	ix, err := ragindex.NewIndex(2)
	require.NoError(t, err)
	require.NoError(t, ix.Add(core.Chunk{
		ID: "guide.md::chunk_0", Text: "Kinderopvang subsidie informatie",
		Source: "guide.md", StartChar: 0, EndChar: 32,
	}, []float32{1, 0}))

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	retriever, err := ragindex.NewRetriever(ix, embedder)
	require.NoError(t, err)

	a, err := New(loadStore(t), rankingOracle(t, rankedResponse), WithRetriever(retriever))
	require.NoError(t, err)

	resp, err := a.Respond(context.Background(), "", completeProfile(), "kinderopvang")
	require.NoError(t, err)
	require.Len(t, resp.Sources, 1)
	assert.Equal(t, "guide.md::chunk_0", resp.Sources[0].ChunkID)
}

func TestRespond_RetrievalDegradesGracefully(t *testing.T) {
	ix, err := ragindex.NewIndex(2)
	require.NoError(t, err)
	require.NoError(t, ix.Add(core.Chunk{
		ID: "guide.md::chunk_0", Text: "text", Source: "guide.md", StartChar: 0, EndChar: 4,
	}, []float32{1, 0}))

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding backend down")
	}
	retriever, err := ragindex.NewRetriever(ix, embedder)
	require.NoError(t, err)

	a, err := New(loadStore(t), rankingOracle(t, rankedResponse), WithRetriever(retriever))
	require.NoError(t, err)

	resp, err := a.Respond(context.Background(), "", completeProfile(), "kinderopvang")
	require.NoError(t, err, "retrieval outage must not fail the turn")
	assert.Len(t, resp.Schemes, 1)
	assert.Empty(t, resp.Sources)
	assert.Contains(t, resp.Reply, "No sources found",
		"a retrieval outage must be flagged in the reply, not silently absorbed")
}

func TestRespond_NoRetrieverOmitsSourcesNote(t *testing.T) {
	a, err := New(loadStore(t), rankingOracle(t, rankedResponse))
	require.NoError(t, err)

	resp, err := a.Respond(context.Background(), "", completeProfile(), "kinderopvang")
	require.NoError(t, err)
	assert.Empty(t, resp.Sources)
	assert.NotContains(t, resp.Reply, "No sources found",
		"an unconfigured retriever is not an outage")
}

func TestRespond_RankingFailureIsFatal(t *testing.T) {
	a, err := New(loadStore(t), rankingOracle(t, "no json here at all"))
	require.NoError(t, err)

	_, err = a.Respond(context.Background(), "", completeProfile(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ranking.ErrRankingParse)
}

func TestRespond_SessionContinuity(t *testing.T) {
	repo, backend, err := badger.NewMemorySessionRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	a, err := New(loadStore(t), rankingOracle(t, rankedResponse), WithSessions(repo))
	require.NoError(t, err)

	ctx := context.Background()

	// First turn: only the municipality.
	resp, err := a.Respond(ctx, "sess-1", &core.UserProfile{Municipality: "Utrecht"}, "")
	require.NoError(t, err)
	assert.Equal(t, ModeIntake, resp.Mode)

	// Second turn: the rest arrives; earlier answers came from the session.
	children := 1
	income := 1600.0
	resp, err = a.Respond(ctx, "sess-1", &core.UserProfile{
		IsSingleParent:      true,
		ChildrenU18:         &children,
		NetIncomeMonthlyEUR: &income,
	}, "childcare help")
	require.NoError(t, err)
	assert.Equal(t, ModeResults, resp.Mode)
	assert.Equal(t, "Utrecht", resp.Profile.Municipality)
	assert.Len(t, resp.Schemes, 1)
}

func TestMergeProfile(t *testing.T) {
	children := 2
	income := 1500.0
	dst := &core.UserProfile{Municipality: "Utrecht", ChildrenU18: &children}

	mergeProfile(dst, &core.UserProfile{NetIncomeMonthlyEUR: &income})
	assert.Equal(t, "Utrecht", dst.Municipality, "absent fields never erase answers")
	require.NotNil(t, dst.ChildrenU18)
	assert.Equal(t, 2, *dst.ChildrenU18)
	require.NotNil(t, dst.NetIncomeMonthlyEUR)

	mergeProfile(dst, &core.UserProfile{IsSingleParent: true})
	assert.True(t, dst.IsSingleParent)
	mergeProfile(dst, &core.UserProfile{})
	assert.True(t, dst.IsSingleParent, "single-parent status sticks")

	mergeProfile(dst, nil)
	assert.Equal(t, "Utrecht", dst.Municipality)
}

func TestMissingFields_Order(t *testing.T) {
	assert.Equal(t,
		[]string{FieldMunicipality, FieldChildren, FieldIncome},
		missingFields(&core.UserProfile{}))

	income := 1000.0
	assert.Equal(t,
		[]string{FieldMunicipality, FieldChildren},
		missingFields(&core.UserProfile{NetIncomeMonthlyEUR: &income}))
}
