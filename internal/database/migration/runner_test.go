package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V10__add_indexes.sql", "CREATE INDEX x ON t(a);")
	writeMigration(t, dir, "V2__seed.sql", "INSERT INTO t VALUES (1);")
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE t (a INT);")
	writeMigration(t, dir, "notes.txt", "ignored")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 || migs[2].Version != 10 {
		t.Fatalf("expected numeric version order, got %v %v %v", migs[0].Version, migs[1].Version, migs[2].Version)
	}
	if migs[0].Name != "init" {
		t.Fatalf("unexpected name: %s", migs[0].Name)
	}
}

func TestLoadMigrations_DuplicateVersionRejected(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__a.sql", "SELECT 1;")
	writeMigration(t, dir, "V1__b.sql", "SELECT 2;")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrations_EmptyFileRejected(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__empty.sql", "   \n")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected empty migration error")
	}
}

func TestLoadMigrations_MissingDirIsNoop(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}

func TestLoadMigrations_ChecksumIsStable(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeMigration(t, dirA, "V1__init.sql", "CREATE TABLE t (a INT);")
	writeMigration(t, dirB, "V1__init.sql", "CREATE TABLE t (a INT);\n")

	a, err := loadMigrations(dirA)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := loadMigrations(dirB)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Trailing whitespace is trimmed before hashing.
	if a[0].Checksum != b[0].Checksum {
		t.Fatalf("checksum must ignore trailing whitespace")
	}
}
