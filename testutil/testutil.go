package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the
// captured output. The original stdout is always restored, even if the
// function returns an error.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered to avoid goroutine leak
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// TempDir creates a temporary directory for testing with automatic cleanup.
// The directory is created with secure permissions (0750) and is removed
// when the test completes via t.Cleanup().
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "xpm-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// WriteInstallTree lays out an xpm-style store under base:
//
//	base/xPacks/<pkg>/<version>/<suffix>/<command>
//
// writing the command as an executable stub. pkg and suffix may use forward
// slashes on any platform. Returns the path of the command file.
func WriteInstallTree(t *testing.T, base, pkg, version, suffix, command string) string {
	t.Helper()

	dir := filepath.Join(base, "xPacks", filepath.FromSlash(pkg), version, filepath.FromSlash(suffix))
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("Failed to create install tree %s: %v", dir, err)
	}

	path := filepath.Join(dir, command)
	stub := []byte("#!/bin/sh\nexit 0\n")
	if runtime.GOOS == "windows" {
		stub = []byte("@echo off\r\n")
	}
	if err := os.WriteFile(path, stub, 0755); err != nil {
		t.Fatalf("Failed to write command stub %s: %v", path, err)
	}
	return path
}

// WriteVersionDirs creates bare version directories (no binaries) under the
// tool's store directory, for tests that only exercise version selection.
func WriteVersionDirs(t *testing.T, base, pkg string, versions ...string) string {
	t.Helper()

	pkgDir := filepath.Join(base, "xPacks", filepath.FromSlash(pkg))
	for _, version := range versions {
		if err := os.MkdirAll(filepath.Join(pkgDir, version), 0750); err != nil {
			t.Fatalf("Failed to create version directory %s: %v", version, err)
		}
	}
	return pkgDir
}
