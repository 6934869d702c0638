// Package storage defines persistence contracts for the challenge catalog.
//
// The catalog records which artifacts were issued and what their bytes hashed
// to. It never stores the phrase, method or placement: those are always
// recomputed from the seed.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested catalog record is missing.
var ErrNotFound = errors.New("record not found")

// Challenge is one issued artifact.
type Challenge struct {
	Seed         uint32
	ArtifactPath string
	Digest       string
	Width        int
	Height       int
	CreatedAt    time.Time
}

// ChallengePage is one page of catalog records ordered by seed.
type ChallengePage struct {
	Challenges    []Challenge
	NextPageToken string
}

// ChallengeStore persists catalog records.
type ChallengeStore interface {
	// PutChallenge inserts or replaces the record for the challenge seed.
	PutChallenge(ctx context.Context, challenge Challenge) error
	GetChallenge(ctx context.Context, seed uint32) (Challenge, error)
	ListChallenges(ctx context.Context, pageSize int, pageToken string) (ChallengePage, error)
}
