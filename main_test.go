package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// Test helper to clean up after tests
func TestMain(m *testing.M) {
	// Initialize exceptions table for tests
	InitExceptions()

	// Run tests
	code := m.Run()

	// Clean up
	os.Exit(code)
}

// ===== EXCEPTIONS TESTS =====

func TestExceptionTables(t *testing.T) {
	tests := []struct {
		name      string
		exception int8
		exitCode  int
	}{
		{"Wrong argument", WRONG_ARGUMENT, 1},
		{"Dofile not found", FILE_NOT_FOUND, 1},
		{"Read error", READ_ERROR, 1},
		{"Write error", WRITE_ERROR, 2},
		{"Stdin error", STDIN_ERROR, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Exps[tt.exception]; !ok {
				t.Errorf("Exps missing message for exception %d", tt.exception)
			}
			if ExitCodes[tt.exception] != tt.exitCode {
				t.Errorf("ExitCodes[%d] = %d, want %d", tt.exception, ExitCodes[tt.exception], tt.exitCode)
			}
		})
	}
}

// ===== FLAG PARSING TESTS =====

// Both argument-error shapes map to exit code 1; code 2 is reserved for
// write failures. The flag set must therefore hand parse errors back to
// main instead of exiting itself.
func TestUnknownFlagIsArgumentError(t *testing.T) {
	fs := newFlagSet()
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	err := fs.Parse([]string{"-bogusflag"})
	if err == nil {
		t.Fatal("parsing an unknown flag should return an error")
	}
	if errors.Is(err, flag.ErrHelp) {
		t.Fatal("an unknown flag is not a help request")
	}

	if ExitCodes[WRONG_ARGUMENT] != 1 {
		t.Errorf("argument errors must exit 1, got %d", ExitCodes[WRONG_ARGUMENT])
	}
}

func TestHelpFlagIsNotAnError(t *testing.T) {
	fs := newFlagSet()
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	err := fs.Parse([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h should surface flag.ErrHelp, got %v", err)
	}
}

func TestFlagSetDefaults(t *testing.T) {
	fs := newFlagSet()
	fs.SetOutput(io.Discard)

	if err := fs.Parse([]string{"-D", "sub", "-o", "GNUmakefile", "-y"}); err != nil {
		t.Fatalf("valid flags should parse: %v", err)
	}
	if WORKING_DIR != "sub" || OUTPUT != "GNUmakefile" || !ASSUME_YES {
		t.Errorf("flag values not bound: D=%q o=%q y=%v", WORKING_DIR, OUTPUT, ASSUME_YES)
	}

	// restore defaults for other tests
	WORKING_DIR, OUTPUT, ASSUME_YES = ".", "Makefile", false
}

// ===== FUNCS.GO UNIT TESTS =====

func TestGetPwd(t *testing.T) {
	pwd := GetPwd()
	if pwd == "" {
		t.Error("GetPwd() should not be empty")
	}
	if pwd == "NAN" {
		t.Error("GetPwd() should resolve the working directory in tests")
	}
}

func TestWriteMakefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Makefile")

	if err := WriteMakefile(path, "all:\n\techo ok\n"); err != nil {
		t.Fatalf("WriteMakefile() unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat Makefile: %v", err)
	}

	// shared build file: group and others keep read access
	if perm := info.Mode().Perm(); perm&0o044 != 0o044 {
		t.Errorf("Makefile mode = %v, want world-readable 0644", perm)
	}

	// a second write replaces, never appends
	if err := WriteMakefile(path, "short\n"); err != nil {
		t.Fatalf("WriteMakefile() overwrite error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back Makefile: %v", err)
	}
	if string(content) != "short\n" {
		t.Errorf("WriteMakefile() did not replace content: %q", content)
	}
}

// ===== EMBEDDED HELPERS =====

func TestMakeHelpersEmbedded(t *testing.T) {
	if makeHelpers == "" {
		t.Fatal("makeHelpers blob should be embedded")
	}
	// the blob is opaque to the pipeline; only its presence matters
	if len(makeHelpers) < 10 {
		t.Errorf("makeHelpers suspiciously short: %q", makeHelpers)
	}
}
