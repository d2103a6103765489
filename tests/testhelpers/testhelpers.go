// Package testhelpers provides shared setup helpers for integration tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/javelin-build/javelin/internal/constants"
)

// SetupTestWorkspace creates a temporary workspace with the given javelin.yaml
// content and returns its root directory.
func SetupTestWorkspace(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return dir
}

// CreateTestFile creates a file (and its parent directories) inside the
// workspace.
func CreateTestFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	return path
}

// ValidProto is a minimal proto source that compiles cleanly.
const ValidProto = `syntax = "proto3";

package greet.v1;

message Greeting {
  string message = 1;
}
`

// BrokenProto is a proto source with a missing field number.
const BrokenProto = `syntax = "proto3";

package broken.v1;

message Broken {
  string message;
}
`

// ValidJava is a minimal Java source that compiles cleanly.
const ValidJava = "public class A { }\n"

// BrokenJava is a Java source with a missing semicolon on line 3.
const BrokenJava = "public class B {\n  void f() {\n    int x = 1\n  }\n}\n"
