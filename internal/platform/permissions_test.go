package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.txt")
	if err := os.WriteFile(path, []byte("test"), FilePerm); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}

func TestMakeExecutable(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "runner.mjs")
	if err := os.WriteFile(path, []byte("#!/usr/bin/env node\n"), FilePerm); err != nil {
		t.Fatal(err)
	}

	if err := MakeExecutable(path); err != nil {
		t.Fatalf("MakeExecutable failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != ExecPerm {
			t.Errorf("permissions = %o, want %o", perm, ExecPerm)
		}
	}
}

func TestMakeExecutable_Missing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Chmod is a no-op on Windows")
	}
	if err := MakeExecutable(filepath.Join(t.TempDir(), "missing.mjs")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
