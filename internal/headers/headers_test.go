package headers_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"darwingen/internal/headers"
)

func TestRecordCollapsesDuplicates(t *testing.T) {
	reg := headers.NewRegistry()
	g := headers.Guard{Prefix: "#ifdef __arm64__\n\n", Arch: "arm64", Suffix: "\n\n#endif"}
	reg.Record("ffi.h", g)
	reg.Record("ffi.h", g)
	reg.Record("ffi.h", g)

	if guards := reg.Guards("ffi.h"); len(guards) != 1 {
		t.Fatalf("expected 1 guard after duplicate records, got %d", len(guards))
	}
}

func TestGuardsSortedByArch(t *testing.T) {
	reg := headers.NewRegistry()
	reg.Record("ffi.h", headers.Guard{Prefix: "x", Arch: "x86_64", Suffix: "y"})
	reg.Record("ffi.h", headers.Guard{Prefix: "a", Arch: "arm64", Suffix: "b"})
	reg.Record("ffi.h", headers.Guard{Prefix: "i", Arch: "i386", Suffix: "j"})

	guards := reg.Guards("ffi.h")
	archs := make([]string, len(guards))
	for i, g := range guards {
		archs[i] = g.Arch
	}
	want := []string{"arm64", "i386", "x86_64"}
	for i := range want {
		if archs[i] != want[i] {
			t.Fatalf("guard order = %v, want %v", archs, want)
		}
	}
}

func TestWriteUmbrellasDispatchesPerArch(t *testing.T) {
	reg := headers.NewRegistry()
	reg.Record("foo.h", headers.Guard{Prefix: "#ifdef __x86_64__\n\n", Arch: "x86_64", Suffix: "\n\n#endif"})
	reg.Record("foo.h", headers.Guard{Prefix: "#ifdef __arm64__\n\n", Arch: "arm64", Suffix: "\n\n#endif"})

	dir := t.TempDir()
	if err := headers.WriteUmbrellas(dir, reg); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "foo.h"))
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	want := "#ifdef __arm64__\n\n#include <foo_arm64.h>\n\n\n#endif\n" +
		"#ifdef __x86_64__\n\n#include <foo_x86_64.h>\n\n\n#endif\n"
	if got != want {
		t.Fatalf("umbrella content:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteUmbrellasOneFilePerHeader(t *testing.T) {
	reg := headers.NewRegistry()
	g := headers.Guard{Prefix: "p", Arch: "arm64", Suffix: "s"}
	reg.Record("ffi.h", g)
	reg.Record("ffitarget.h", g)

	dir := t.TempDir()
	if err := headers.WriteUmbrellas(dir, reg); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"ffi.h", "ffitarget.h"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing umbrella %s: %v", name, err)
		}
		stem := strings.TrimSuffix(name, ".h")
		if !strings.Contains(string(data), "#include <"+stem+"_arm64.h>") {
			t.Fatalf("umbrella %s lacks suffixed include: %q", name, data)
		}
	}
}

func TestEmptyRegistryWritesNothing(t *testing.T) {
	dir := t.TempDir()
	if err := headers.WriteUmbrellas(dir, headers.NewRegistry()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no umbrellas, got %v", entries)
	}
}
