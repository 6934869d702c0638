package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/hidden.space/internal/services/challenge/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPutGetChallengeRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)
	input := storage.Challenge{
		Seed:         4294967295,
		ArtifactPath: "output/4294967295.png",
		Digest:       "blake3:abc",
		Width:        800,
		Height:       800,
		CreatedAt:    now,
	}
	if err := store.PutChallenge(context.Background(), input); err != nil {
		t.Fatalf("put challenge: %v", err)
	}

	got, err := store.GetChallenge(context.Background(), input.Seed)
	if err != nil {
		t.Fatalf("get challenge: %v", err)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, now)
	}
	got.CreatedAt = input.CreatedAt
	if got != input {
		t.Fatalf("challenge = %+v, want %+v", got, input)
	}
}

func TestPutChallengeReplacesExisting(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	first := storage.Challenge{Seed: 7, ArtifactPath: "a.png", Digest: "d1", Width: 8, Height: 8}
	if err := store.PutChallenge(ctx, first); err != nil {
		t.Fatalf("put first: %v", err)
	}
	second := first
	second.Digest = "d2"
	second.ArtifactPath = "b.png"
	if err := store.PutChallenge(ctx, second); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := store.GetChallenge(ctx, 7)
	if err != nil {
		t.Fatalf("get challenge: %v", err)
	}
	if got.Digest != "d2" || got.ArtifactPath != "b.png" {
		t.Fatalf("challenge = %+v, want replaced record", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected created_at to default to now")
	}
}

func TestGetChallengeNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.GetChallenge(context.Background(), 1)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestPutChallengeValidates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	tests := []storage.Challenge{
		{Seed: 1, Digest: "d", Width: 1, Height: 1},
		{Seed: 1, ArtifactPath: "a.png", Width: 1, Height: 1},
		{Seed: 1, ArtifactPath: "a.png", Digest: "d"},
	}
	for _, tt := range tests {
		if err := store.PutChallenge(context.Background(), tt); err == nil {
			t.Fatalf("expected validation error for %+v", tt)
		}
	}
}

func TestListChallengesPaginates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	for _, seed := range []uint32{30, 10, 20} {
		if err := store.PutChallenge(ctx, storage.Challenge{Seed: seed, ArtifactPath: "x.png", Digest: "d", Width: 1, Height: 1}); err != nil {
			t.Fatalf("put %d: %v", seed, err)
		}
	}

	first, err := store.ListChallenges(ctx, 2, "")
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if len(first.Challenges) != 2 || first.Challenges[0].Seed != 10 || first.Challenges[1].Seed != 20 {
		t.Fatalf("first page = %+v", first.Challenges)
	}
	if first.NextPageToken != "20" {
		t.Fatalf("next page token = %q, want 20", first.NextPageToken)
	}

	second, err := store.ListChallenges(ctx, 2, first.NextPageToken)
	if err != nil {
		t.Fatalf("list second page: %v", err)
	}
	if len(second.Challenges) != 1 || second.Challenges[0].Seed != 30 || second.NextPageToken != "" {
		t.Fatalf("second page = %+v", second)
	}
}

func TestListChallengesRejectsBadInput(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.ListChallenges(context.Background(), 0, ""); err == nil {
		t.Fatal("expected page size error")
	}
	if _, err := store.ListChallenges(context.Background(), 1, "nope"); err == nil {
		t.Fatal("expected page token error")
	}
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.GetChallenge(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("get error = %v, want context.Canceled", err)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
