package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("default steps: got %d err %v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("explicit steps: got %d err %v", got, err)
	}
	for _, raw := range []string{"0", "-2", "abc"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("5"); err != nil || got != 5 {
		t.Fatalf("parse version: got %d err %v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if got, err := parseTarget("4"); err != nil || got != 4 {
		t.Fatalf("parse target: got %d err %v", got, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected error for non-numeric target")
	}
}

func TestResolveMigrationsDir_UsesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := resolveMigrationsDir()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestResolveMigrationsDir_FindsRepoMigrations(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	// package tests run from cmd/migration; step up to the module root.
	if err := os.Chdir(filepath.Join(wd, "..", "..")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if _, err := resolveMigrationsDir(); err != nil {
		t.Fatalf("expected db/migrations to be found: %v", err)
	}
}
