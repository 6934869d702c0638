package sqlitemigrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyRecordsMigration(t *testing.T) {
	db := openInMemoryDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		"README.md":      {Data: []byte("not a migration")},
	}

	if err := Apply(context.Background(), db, fsys, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 1 {
		t.Fatalf("expected 1 migration row, got %d", n)
	}
	if n := count(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'items'"); n != 1 {
		t.Fatal("expected items table")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openInMemoryDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);")},
	}
	for i := 0; i < 2; i++ {
		if err := Apply(context.Background(), db, fsys, "."); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	if n := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 1 {
		t.Fatalf("expected single migration row after replay, got %d", n)
	}
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	db := openInMemoryDB(t)
	bad := fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREAT TABLE things(id INT);")},
	}
	if err := Apply(context.Background(), db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if n := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 0 {
		t.Fatalf("expected failed migration to stay unrecorded, got %d rows", n)
	}
}

func TestLoadOrdersByName(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/002_b.sql": {Data: []byte("B")},
		"sql/001_a.sql": {Data: []byte("A")},
	}
	migrations, err := Load(fsys, "sql")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(migrations) != 2 || migrations[0].Name != "001_a.sql" || migrations[1].Up != "B" {
		t.Fatalf("unexpected migrations %+v", migrations)
	}
}

func TestUpSection(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CREATE TABLE a(x);", "CREATE TABLE a(x);"},
		{"-- +migrate Up\nUP", "\nUP"},
		{"-- +migrate Up\nUP\n-- +migrate Down\nDOWN", "\nUP\n"},
	}
	for _, tt := range tests {
		if got := UpSection(tt.in); got != tt.want {
			t.Fatalf("UpSection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func count(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}
