package buildpipeline

import (
	"errors"
	"os"
	"testing"
)

func TestRunInDirRestoresOnSuccess(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	var inside string
	if err := runInDir(dir, func() error {
		inside, _ = os.Getwd()
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	// TempDir may resolve through symlinks; compare via os.SameFile on the
	// directory entries instead of string equality.
	wantInfo, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	gotInfo, err := os.Stat(inside)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(wantInfo, gotInfo) {
		t.Fatalf("fn ran in %s, want %s", inside, dir)
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Fatalf("working directory not restored: %s -> %s", before, after)
	}
}

func TestRunInDirRestoresOnFailure(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	sentinel := errors.New("boom")

	err = runInDir(t.TempDir(), func() error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Fatalf("working directory not restored after failure: %s -> %s", before, after)
	}
}

func TestRunInDirMissingDir(t *testing.T) {
	err := runInDir("/definitely/not/a/dir", func() error { return nil })
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
