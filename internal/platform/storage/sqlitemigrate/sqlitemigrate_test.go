package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func TestApplyRunsPendingMigrationsInOrder(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	migrations := fstest.MapFS{
		"migrations/002_index.sql":  {Data: []byte("-- +migrate Up\nCREATE INDEX roster_name ON roster(name);\n-- +migrate Down\nDROP INDEX roster_name;")},
		"migrations/001_roster.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE roster(id TEXT PRIMARY KEY, name TEXT);")},
		"migrations/README.md":      {Data: []byte("not a migration")},
	}
	if err := Apply(context.Background(), db, migrations, "migrations"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("recorded migrations = %d, want 2", got)
	}
	if got := count(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?", "roster_name"); got != 1 {
		t.Fatalf("roster_name index count = %d, want 1", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	migrations := fstest.MapFS{
		"001_roster.sql": {Data: []byte("CREATE TABLE roster(id TEXT PRIMARY KEY);")},
	}
	for range 2 {
		if err := Apply(context.Background(), db, migrations, ""); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
	}
	if got := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("recorded migrations = %d, want 1", got)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	t.Parallel()

	db := openMemory(t)
	migrations := fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE roster(id TEXT PRIMARY KEY); INSERT INTO nowhere VALUES (1);")},
	}
	if err := Apply(context.Background(), db, migrations, ""); err == nil {
		t.Fatal("Apply() error = nil, want failure")
	}
	if got := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("recorded migrations = %d, want 0", got)
	}
}

func TestApplyRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("Apply(nil db) error = nil")
	}
	if err := Apply(context.Background(), openMemory(t), nil, ""); err == nil {
		t.Fatal("Apply(nil fs) error = nil")
	}
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(x);", want: "CREATE TABLE a(x);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(x);", want: "\nCREATE TABLE a(x);"},
		{name: "up and down", content: "-- +migrate Up\nCREATE TABLE a(x);\n-- +migrate Down\nDROP TABLE a;", want: "\nCREATE TABLE a(x);\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := UpSection(tc.content); got != tc.want {
				t.Fatalf("UpSection() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsAlreadyExists(t *testing.T) {
	t.Parallel()

	if !IsAlreadyExists(errors.New("table roster already exists")) {
		t.Fatal("IsAlreadyExists(already exists) = false")
	}
	if !IsAlreadyExists(errors.New("duplicate column name: caption")) {
		t.Fatal("IsAlreadyExists(duplicate column) = false")
	}
	if IsAlreadyExists(errors.New("no such table")) || IsAlreadyExists(nil) {
		t.Fatal("IsAlreadyExists(other) = true")
	}
}
