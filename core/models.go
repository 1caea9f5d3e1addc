package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// UserProfile is the immutable input to a single ranking request.
// It is collected by the intake layer; the core never mutates it.
// Nil pointer fields mean the intake has not collected that value yet.
type UserProfile struct {
	IsSingleParent      bool     `json:"is_single_parent"`
	ChildrenU18         *int     `json:"children_u18"`
	NetIncomeMonthlyEUR *float64 `json:"net_income_monthly_eur"`
	AssetsSavingsEUR    *float64 `json:"assets_savings_eur"`
	Municipality        string   `json:"municipality"`
}

// Candidate is the compact, whitelisted projection of a catalog row that is
// handed to the ranking oracle. No other catalog columns may leak through it.
type Candidate struct {
	Title                  string   `json:"title"`
	Municipality           string   `json:"municipality"`
	Category               string   `json:"category"`
	Year                   *int     `json:"year"`
	DocType                string   `json:"doc_type"`
	BenefitSignals         []string `json:"benefit_signals"`
	EligibilitySignals     []string `json:"eligibility_signals"`
	ApplicationDataSignals []string `json:"application_data_signals"`
	EligibilitySnippet     string   `json:"eligibility_snippet"`
	ApplicationSnippet     string   `json:"application_snippet"`
	URL                    string   `json:"url"`
	CvdrID                 string   `json:"cvdr_id"`
}

// Confidence expresses how certain the ranking oracle is about an item.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the defined confidence levels.
func (c Confidence) Valid() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

// RankedItem is one entry of the oracle's ranked short-list, produced fresh
// per request. Ranks are strictly ordered and unique within a list.
type RankedItem struct {
	Rank               int        `json:"rank"`
	Score              float64    `json:"score"` // 0-100 as assigned by the oracle
	Title              string     `json:"title"`
	Municipality       string     `json:"municipality"`
	Category           string     `json:"category"`
	Year               *int       `json:"year"`
	URL                string     `json:"url"`
	BenefitSummary     string     `json:"benefit_summary"`
	EligibilitySummary string     `json:"eligibility_summary"`
	RequiredDocuments  []string   `json:"required_data_or_documents"`
	WhyRelevant        string     `json:"why_relevant"`
	Confidence         Confidence `json:"confidence"`
	CvdrID             *string    `json:"cvdr_id"`
	DocType            *string    `json:"doc_type"`
}

// Chunk is a fixed-size character window of a source document, the atomic
// unit stored in and retrieved from the embedding index. Offsets refer to
// the cleaned document text, with StartChar < EndChar.
type Chunk struct {
	ID        string `json:"id"` // source + ordinal, unique within an index
	Text      string `json:"text"`
	Source    string `json:"source"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
}

// RetrievalHit is one result of a vector similarity query. Ephemeral,
// produced per query and never persisted.
type RetrievalHit struct {
	Score   float32 `json:"score"`
	Source  string  `json:"source"`
	ChunkID string  `json:"chunk_id"`
	Text    string  `json:"text"`
}

// VectorSet is the persisted form of the embedding index vectors.
// Rows are stored in the same order as the chunk metadata file.
type VectorSet struct {
	Dim     int
	Vectors [][]float32
}

// SessionRecord is the stored snapshot of an intake session's profile.
type SessionRecord struct {
	SessionID string
	Profile   UserProfile
	UpdatedAt time.Time
}
