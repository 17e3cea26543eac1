package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `
[package]
name = "libffi"

[paths]
source = "."
configure = "./configure"

[build]
cflags = ["-fno-common"]

[families]
tvos = true
osx = false
`
	if err := os.WriteFile(filepath.Join(dir, "darwingen.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	m, found, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("manifest not found")
	}
	if m.Config.Package.Name != "libffi" {
		t.Errorf("package name = %q", m.Config.Package.Name)
	}
	if len(m.Config.Build.CFlags) != 1 || m.Config.Build.CFlags[0] != "-fno-common" {
		t.Errorf("cflags = %v", m.Config.Build.CFlags)
	}
	if m.Config.Families.TVOS == nil || !*m.Config.Families.TVOS {
		t.Error("tvos should be enabled by manifest")
	}
	if m.Config.Families.OSX == nil || *m.Config.Families.OSX {
		t.Error("osx should be disabled by manifest")
	}
	if m.Config.Families.IOS != nil {
		t.Error("ios should be unset")
	}
}

func TestLoadProjectManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "darwingen.toml"), []byte("[package]\nname = \"libffi\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "x86")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, found, err := loadProjectManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("manifest not found from nested dir")
	}
	if m.Root != root {
		// TempDir may return a symlinked path; compare resolved.
		wantRoot, _ := filepath.EvalSymlinks(root)
		gotRoot, _ := filepath.EvalSymlinks(m.Root)
		if wantRoot != gotRoot {
			t.Fatalf("manifest root = %q, want %q", m.Root, root)
		}
	}
}

func TestLoadProjectManifestAbsent(t *testing.T) {
	_, found, err := loadProjectManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("unexpected manifest")
	}
}

func TestReadUIMode(t *testing.T) {
	for value, want := range map[string]uiMode{
		"":     uiModeAuto,
		"auto": uiModeAuto,
		"ON":   uiModeOn,
		"off":  uiModeOff,
	} {
		got, err := readUIMode(value)
		if err != nil {
			t.Fatalf("readUIMode(%q): %v", value, err)
		}
		if got != want {
			t.Errorf("readUIMode(%q) = %q, want %q", value, got, want)
		}
	}
	if _, err := readUIMode("fancy"); err == nil {
		t.Error("expected error for invalid ui mode")
	}
}
