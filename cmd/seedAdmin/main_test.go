package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestResolveMigrationsDir(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	cmdDir := filepath.Dir(file)
	repoRoot := filepath.Clean(filepath.Join(cmdDir, "..", ".."))

	cases := []struct {
		name string
		wd   string
	}{
		{name: "from repo root", wd: repoRoot},
		{name: "from cmd dir", wd: cmdDir},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			withWorkingDir(t, tc.wd)

			dir, err := resolveMigrationsDir()
			if err != nil {
				t.Fatalf("resolve migrations dir: %v", err)
			}
			info, err := os.Stat(dir)
			if err != nil {
				t.Fatalf("stat migrations dir: %v", err)
			}
			if !info.IsDir() {
				t.Fatalf("expected directory, got file: %s", dir)
			}
			if !strings.HasSuffix(filepath.ToSlash(dir), "infrastructure/sqlite/migrations") {
				t.Fatalf("unexpected migrations path: %s", dir)
			}
		})
	}
}

func withWorkingDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}
