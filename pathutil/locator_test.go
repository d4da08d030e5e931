// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeStub writes an executable stub named name into dir and returns its path.
func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, ExeName(name))
	content := []byte("#!/bin/sh\nexit 0\n")
	if runtime.GOOS == "windows" {
		content = []byte("@echo off\r\n")
	}
	if err := os.WriteFile(path, content, 0755); err != nil {
		t.Fatalf("Failed to write stub: %v", err)
	}
	return path
}

func TestSystemLocateBareName(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "mytool")
	t.Setenv("PATH", dir)

	resolved, ok := System{}.Locate("mytool")
	if !ok {
		t.Fatal("Locate() = false, want true")
	}
	if resolved != stub {
		t.Errorf("Locate() = %q, want %q", resolved, stub)
	}
	if !filepath.IsAbs(resolved) {
		t.Errorf("Locate() returned relative path %q", resolved)
	}
}

func TestSystemLocateExplicitPath(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "mytool")

	resolved, ok := System{}.Locate(stub)
	if !ok {
		t.Fatal("Locate() = false, want true")
	}
	if resolved != stub {
		t.Errorf("Locate() = %q, want %q", resolved, stub)
	}
}

func TestSystemLocateMisses(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PATH", dir)

	tests := []struct {
		name      string
		candidate string
	}{
		{"empty candidate", ""},
		{"unknown command", "definitely-not-installed"},
		{"missing explicit path", filepath.Join(dir, "missing")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resolved, ok := (System{}).Locate(tt.candidate); ok {
				t.Errorf("Locate(%q) = %q, want miss", tt.candidate, resolved)
			}
		})
	}
}

func TestSystemLocateNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute bits are not meaningful on Windows")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, ok := (System{}).Locate(path); ok {
		t.Error("Locate() resolved a non-executable file")
	}
}

func TestMapLocator(t *testing.T) {
	loc := MapLocator{"/store/bin/gcc": "/store/bin/gcc"}

	if resolved, ok := loc.Locate("/store/bin/gcc"); !ok || resolved != "/store/bin/gcc" {
		t.Errorf("Locate() = %q, %v; want hit", resolved, ok)
	}
	if _, ok := loc.Locate("/elsewhere"); ok {
		t.Error("Locate() = true for unmapped candidate")
	}
}

func TestExeName(t *testing.T) {
	got := ExeName("mytool")
	if runtime.GOOS == "windows" {
		if got != "mytool.exe" {
			t.Errorf("ExeName() = %q, want mytool.exe", got)
		}
		if ExeName("mytool.exe") != "mytool.exe" {
			t.Error("ExeName() double-appended .exe")
		}
	} else if got != "mytool" {
		t.Errorf("ExeName() = %q, want mytool", got)
	}
}

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()

	exe := writeStub(t, dir, "runme")
	if !IsExecutable(exe) {
		t.Error("IsExecutable() = false for executable stub")
	}

	if IsExecutable(dir) {
		t.Error("IsExecutable() = true for a directory")
	}
	if IsExecutable(filepath.Join(dir, "missing")) {
		t.Error("IsExecutable() = true for missing file")
	}

	if runtime.GOOS != "windows" {
		plain := filepath.Join(dir, "plain.txt")
		if err := os.WriteFile(plain, []byte("data"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if IsExecutable(plain) {
			t.Error("IsExecutable() = true for file without execute bit")
		}
	}
}

func TestFindToolInPath(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "mytool")
	t.Setenv("PATH", dir)

	if got := FindToolInPath("mytool"); got != stub {
		t.Errorf("FindToolInPath() = %q, want %q", got, stub)
	}
	if got := FindToolInPath("not-a-tool"); got != "" {
		t.Errorf("FindToolInPath() = %q, want empty", got)
	}
}

func TestInstallSuggestion(t *testing.T) {
	if got := InstallSuggestion("openocd"); !strings.Contains(got, "xpm install") {
		t.Errorf("InstallSuggestion(openocd) = %q, want xpm install hint", got)
	}
	if got := InstallSuggestion("unknown-tool"); !strings.Contains(got, "unknown-tool") {
		t.Errorf("InstallSuggestion() = %q, want tool name echoed", got)
	}
}
