package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steunwijzer/steunwijzer/ai/mock"
	"github.com/steunwijzer/steunwijzer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *core.UserProfile {
	children := 1
	income := 1600.0
	return &core.UserProfile{
		IsSingleParent:      true,
		ChildrenU18:         &children,
		NetIncomeMonthlyEUR: &income,
		Municipality:        "Utrecht",
	}
}

func testCandidates() []core.Candidate {
	year := 2025
	return []core.Candidate{
		{
			Title:          "Subsidie kinderopvang alleenstaande ouders",
			Municipality:   "Utrecht",
			Category:       "kinderopvang",
			Year:           &year,
			BenefitSignals: []string{"kinderopvang"},
			URL:            "https://example.org/ko",
			CvdrID:         "CVDR1",
		},
	}
}

func TestNewOracle(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		oracle, err := NewOracle(mock.NewMockCompleter())
		require.NoError(t, err)
		assert.NotNil(t, oracle)
	})

	t.Run("nil completer", func(t *testing.T) {
		_, err := NewOracle(nil)
		assert.Equal(t, ErrNilCompleter, err)
	})

	t.Run("invalid max attempts", func(t *testing.T) {
		_, err := NewOracle(mock.NewMockCompleter(), WithMaxAttempts(0))
		assert.Equal(t, ErrInvalidMaxAttempts, err)
	})
}

func TestRank_EmptyCandidates(t *testing.T) {
	completer := mock.NewMockCompleter()
	oracle, err := NewOracle(completer)
	require.NoError(t, err)

	items, err := oracle.Rank(context.Background(), nil, testProfile(), 15)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, completer.CallCount(), "model should not be called for empty candidates")
}

func TestRank_PromptContents(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return `[{"rank": 1, "score": 90, "title": "Subsidie kinderopvang alleenstaande ouders"}]`, nil
	}
	oracle, err := NewOracle(completer)
	require.NoError(t, err)

	items, err := oracle.Rank(context.Background(), testCandidates(), testProfile(), 15)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Contains(t, completer.LastSystem, "Return ONLY valid JSON")
	assert.Contains(t, completer.LastUser, `"municipality":"Utrecht"`)
	assert.Contains(t, completer.LastUser, `"cvdr_id":"CVDR1"`)
	assert.Contains(t, completer.LastUser, `"max_results":15`)
}

func TestRank_RetriesTransportErrors(t *testing.T) {
	calls := 0
	completer := mock.NewMockCompleter()
	completer.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection refused")
		}
		return `[{"rank": 1, "score": 80, "title": "A"}]`, nil
	}

	oracle, err := NewOracle(completer, WithMaxAttempts(3), WithRetryDelay(time.Millisecond))
	require.NoError(t, err)

	items, err := oracle.Rank(context.Background(), testCandidates(), testProfile(), 15)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 3, calls)
}

func TestRank_TransportErrorExhaustsAttempts(t *testing.T) {
	transportErr := errors.New("connection refused")
	completer := mock.NewMockCompleter()
	completer.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return "", transportErr
	}

	oracle, err := NewOracle(completer, WithMaxAttempts(2), WithRetryDelay(time.Millisecond))
	require.NoError(t, err)

	_, err = oracle.Rank(context.Background(), testCandidates(), testProfile(), 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
	assert.Equal(t, 2, completer.CallCount())
}

func TestRank_ParseErrorNotRetried(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return "I'm sorry, I cannot produce a ranking.", nil
	}

	oracle, err := NewOracle(completer, WithMaxAttempts(3), WithRetryDelay(time.Millisecond))
	require.NoError(t, err)

	_, err = oracle.Rank(context.Background(), testCandidates(), testProfile(), 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRankingParse)
	assert.Equal(t, 1, completer.CallCount(), "parse failures must not be retried")
}

func TestRank_InvalidProfile(t *testing.T) {
	oracle, err := NewOracle(mock.NewMockCompleter())
	require.NoError(t, err)

	_, err = oracle.Rank(context.Background(), testCandidates(), nil, 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidProfile)
}

func TestRank_DefaultTopK(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return `[{"rank": 1, "score": 80, "title": "A"}]`, nil
	}
	oracle, err := NewOracle(completer)
	require.NoError(t, err)

	_, err = oracle.Rank(context.Background(), testCandidates(), testProfile(), 0)
	require.NoError(t, err)
	assert.Contains(t, completer.LastUser, `"max_results":15`)
}

func TestRank_ContextCancelled(t *testing.T) {
	completer := mock.NewMockCompleter()
	completer.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return "", errors.New("transient")
	}
	oracle, err := NewOracle(completer, WithMaxAttempts(5), WithRetryDelay(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = oracle.Rank(ctx, testCandidates(), testProfile(), 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
