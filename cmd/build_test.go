package cmd

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javelin-build/javelin/internal/constants"
)

const protoOnlyConfig = `targets:
  - name: protos
    kind: proto
    srcs: ["proto/**/*.proto"]
`

func TestBuildCmdProtoSuccess(t *testing.T) {
	_, globals := setupWorkspace(t, protoOnlyConfig, map[string]string{
		"proto/greet.proto": "syntax = \"proto3\";\npackage greet.v1;\nmessage Greeting { string message = 1; }\n",
	})

	cmd := BuildCmd{}
	if err := cmd.Run(globals, context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestBuildCmdProtoFailure(t *testing.T) {
	_, globals := setupWorkspace(t, protoOnlyConfig, map[string]string{
		"proto/broken.proto": "syntax = \"proto3\";\nmessage Broken { string message; }\n",
	})
	globals.Quiet = true

	cmd := BuildCmd{}
	err := cmd.Run(globals, context.Background())
	if err == nil {
		t.Fatal("Run() error = nil, want build failure")
	}
	if !strings.Contains(err.Error(), constants.ErrMsgBuildFailed) {
		t.Errorf("Run() error = %v, want %q", err, constants.ErrMsgBuildFailed)
	}
}

func TestBuildCmdTargetSelection(t *testing.T) {
	_, globals := setupWorkspace(t, mixedConfig, mixedFiles)

	cmd := BuildCmd{Targets: []string{"missing"}}
	if err := cmd.Run(globals, context.Background()); err == nil {
		t.Error("Run() error = nil, want unknown target error")
	}
}

func TestBuildCmdJavaEndToEnd(t *testing.T) {
	if _, err := exec.LookPath(constants.JavacBinary); err != nil {
		t.Skipf("javac not found on PATH: %v", err)
	}

	root, globals := setupWorkspace(t, `targets:
  - name: app
    kind: java
    srcs: ["src/**/*.java"]
    output: out/app
`, map[string]string{
		"src/A.java": "public class A { }\n",
	})

	cmd := BuildCmd{}
	if err := cmd.Run(globals, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "out", "app", "A.class")); err != nil {
		t.Errorf("expected compiled class file: %v", err)
	}
}
