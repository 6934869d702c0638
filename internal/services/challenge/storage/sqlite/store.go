// Package sqlite provides a SQLite-backed challenge catalog.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/hidden.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/hidden.space/internal/services/challenge/storage"
	"github.com/louisbranch/hidden.space/internal/services/challenge/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists catalog records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite catalog and applies embedded migrations. The parent
// directory must exist.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutChallenge upserts the record for challenge.Seed.
func (s *Store) PutChallenge(ctx context.Context, challenge storage.Challenge) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	artifactPath := strings.TrimSpace(challenge.ArtifactPath)
	digest := strings.TrimSpace(challenge.Digest)
	if artifactPath == "" {
		return fmt.Errorf("artifact path is required")
	}
	if digest == "" {
		return fmt.Errorf("digest is required")
	}
	if challenge.Width <= 0 || challenge.Height <= 0 {
		return fmt.Errorf("dimensions must be positive")
	}
	createdAt := challenge.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO challenges (seed, artifact_path, digest, width, height, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(seed) DO UPDATE SET
		   artifact_path = excluded.artifact_path,
		   digest = excluded.digest,
		   width = excluded.width,
		   height = excluded.height,
		   created_at = excluded.created_at`,
		int64(challenge.Seed),
		artifactPath,
		digest,
		challenge.Width,
		challenge.Height,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put challenge: %w", err)
	}
	return nil
}

// GetChallenge returns the record for seed.
func (s *Store) GetChallenge(ctx context.Context, seed uint32) (storage.Challenge, error) {
	if err := ctx.Err(); err != nil {
		return storage.Challenge{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Challenge{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT seed, artifact_path, digest, width, height, created_at
		   FROM challenges
		  WHERE seed = ?`,
		int64(seed),
	)
	challenge, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Challenge{}, storage.ErrNotFound
		}
		return storage.Challenge{}, fmt.Errorf("get challenge: %w", err)
	}
	return challenge, nil
}

// ListChallenges returns one page of records ordered by seed. The page token
// is the last seed of the previous page.
func (s *Store) ListChallenges(ctx context.Context, pageSize int, pageToken string) (storage.ChallengePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.ChallengePage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ChallengePage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.ChallengePage{}, fmt.Errorf("page size must be greater than zero")
	}
	after := int64(-1)
	if token := strings.TrimSpace(pageToken); token != "" {
		seed, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return storage.ChallengePage{}, fmt.Errorf("invalid page token %q", pageToken)
		}
		after = int64(seed)
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT seed, artifact_path, digest, width, height, created_at
		   FROM challenges
		  WHERE seed > ?
		  ORDER BY seed ASC
		  LIMIT ?`,
		after,
		pageSize+1,
	)
	if err != nil {
		return storage.ChallengePage{}, fmt.Errorf("list challenges: %w", err)
	}
	defer rows.Close()

	page := storage.ChallengePage{Challenges: make([]storage.Challenge, 0, pageSize)}
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return storage.ChallengePage{}, fmt.Errorf("list challenges: %w", err)
		}
		page.Challenges = append(page.Challenges, challenge)
	}
	if err := rows.Err(); err != nil {
		return storage.ChallengePage{}, fmt.Errorf("list challenges: %w", err)
	}
	if len(page.Challenges) > pageSize {
		page.NextPageToken = strconv.FormatUint(uint64(page.Challenges[pageSize-1].Seed), 10)
		page.Challenges = page.Challenges[:pageSize]
	}
	return page, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row scanner) (storage.Challenge, error) {
	var challenge storage.Challenge
	var seed, createdAt int64
	if err := row.Scan(
		&seed,
		&challenge.ArtifactPath,
		&challenge.Digest,
		&challenge.Width,
		&challenge.Height,
		&createdAt,
	); err != nil {
		return storage.Challenge{}, err
	}
	challenge.Seed = uint32(seed)
	challenge.CreatedAt = fromMillis(createdAt)
	return challenge, nil
}

var _ storage.ChallengeStore = (*Store)(nil)
