package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromFindsConfigAbove(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFile), "language_level: \"17\"\nsources: [src]\n")
	writeFile(t, filepath.Join(root, "src", "a", "A.java"), "class A {}")
	writeFile(t, filepath.Join(root, "src", "B.java"), "class B {}")
	writeFile(t, filepath.Join(root, "src", ".hidden", "C.java"), "class C {}")
	writeFile(t, filepath.Join(root, "src", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "other", "D.java"), "class D {}")

	proj, err := LoadFrom(filepath.Join(root, "src", "a"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	wantRoot, _ := filepath.Abs(root)
	if proj.RootDir != wantRoot {
		t.Errorf("RootDir = %q, want %q", proj.RootDir, wantRoot)
	}
	if proj.Config.LanguageLevel != "17" {
		t.Errorf("LanguageLevel = %q, want 17", proj.Config.LanguageLevel)
	}
	if !proj.Config.LazyBlocks {
		t.Error("LazyBlocks default was lost")
	}

	files, err := proj.JavaFiles()
	if err != nil {
		t.Fatalf("JavaFiles: %v", err)
	}
	want := []string{
		filepath.Join(wantRoot, "src", "B.java"),
		filepath.Join(wantRoot, "src", "a", "A.java"),
	}
	if len(files) != len(want) {
		t.Fatalf("JavaFiles = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("JavaFiles[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestLoadFromWithoutConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.java"), "class A {}")

	proj, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if proj.ConfigPath != "" {
		t.Errorf("ConfigPath = %q, want none", proj.ConfigPath)
	}
	if proj.Config.LanguageLevel != "21" {
		t.Errorf("LanguageLevel = %q, want default", proj.Config.LanguageLevel)
	}
	files, err := proj.JavaFiles()
	if err != nil {
		t.Fatalf("JavaFiles: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("JavaFiles = %v, want one file", files)
	}
}

func TestLoadFromRejectsBadLevel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFile), "language_level: \"latest\"\n")
	if _, err := LoadFrom(root); err == nil {
		t.Error("LoadFrom accepted an invalid language level")
	}
}
