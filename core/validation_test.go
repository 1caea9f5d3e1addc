package core

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *UserProfile
		wantErr error
	}{
		{
			name: "complete profile",
			profile: &UserProfile{
				IsSingleParent: true,
				ChildrenU18:    intPtr(2),
				Municipality:   "Utrecht",
			},
			wantErr: nil,
		},
		{
			name:    "empty profile is valid during intake",
			profile: &UserProfile{},
			wantErr: nil,
		},
		{
			name: "zero children",
			profile: &UserProfile{
				ChildrenU18: intPtr(0),
			},
			wantErr: nil,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: ErrInvalidProfile,
		},
		{
			name: "negative children",
			profile: &UserProfile{
				ChildrenU18: intPtr(-1),
			},
			wantErr: ErrNegativeChildren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProfile() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProfile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRankedItem(t *testing.T) {
	tests := []struct {
		name    string
		item    *RankedItem
		wantErr error
	}{
		{
			name: "valid item",
			item: &RankedItem{
				Rank:       1,
				Score:      87.5,
				Title:      "Bijzondere bijstand",
				Confidence: ConfidenceHigh,
			},
			wantErr: nil,
		},
		{
			name: "score at bounds",
			item: &RankedItem{
				Rank:       3,
				Score:      0,
				Confidence: ConfidenceLow,
			},
			wantErr: nil,
		},
		{
			name:    "nil item",
			item:    nil,
			wantErr: ErrInvalidRankedItem,
		},
		{
			name: "zero rank",
			item: &RankedItem{
				Rank:       0,
				Score:      50,
				Confidence: ConfidenceLow,
			},
			wantErr: ErrInvalidRank,
		},
		{
			name: "score above range",
			item: &RankedItem{
				Rank:       1,
				Score:      101,
				Confidence: ConfidenceMedium,
			},
			wantErr: ErrScoreOutOfRange,
		},
		{
			name: "unknown confidence",
			item: &RankedItem{
				Rank:       1,
				Score:      50,
				Confidence: Confidence("certain"),
			},
			wantErr: ErrInvalidConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRankedItem(tt.item)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRankedItem() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRankedItem() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *Chunk
		wantErr error
	}{
		{
			name: "valid chunk",
			chunk: &Chunk{
				ID:        "regels.txt::chunk_0",
				Text:      "some text",
				Source:    "regels.txt",
				StartChar: 0,
				EndChar:   9,
			},
			wantErr: nil,
		},
		{
			name:    "nil chunk",
			chunk:   nil,
			wantErr: ErrInvalidChunk,
		},
		{
			name: "empty id",
			chunk: &Chunk{
				Text:    "text",
				EndChar: 4,
			},
			wantErr: ErrEmptyChunkID,
		},
		{
			name: "start equals end",
			chunk: &Chunk{
				ID:        "a::chunk_0",
				StartChar: 10,
				EndChar:   10,
			},
			wantErr: ErrInvalidChunkBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunk(tt.chunk)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateChunk() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChunk() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIDFromContent(t *testing.T) {
	a := IDFromContent("CVDR123456/Utrecht")
	b := IDFromContent("CVDR123456/Utrecht")
	c := IDFromContent("CVDR123457/Utrecht")

	if a != b {
		t.Errorf("identical content produced different IDs: %d vs %d", a, b)
	}
	if a == c {
		t.Errorf("distinct content produced the same ID: %d", a)
	}
}
