package integration

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javelin-build/javelin/cmd"
	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/logger"
	"github.com/javelin-build/javelin/tests/testhelpers"
)

func testContext() context.Context {
	log := logger.InitWriter(os.Stderr, true)
	return logger.WithLogger(context.Background(), &log)
}

func globalsFor(root string) *cmd.GlobalOptions {
	return &cmd.GlobalOptions{Config: filepath.Join(root, constants.ConfigFileName)}
}

func TestProtoWorkflow(t *testing.T) {
	root := testhelpers.SetupTestWorkspace(t, `targets:
  - name: protos
    kind: proto
    srcs: ["proto/**/*.proto"]
`)
	testhelpers.CreateTestFile(t, root, "proto/greet.proto", testhelpers.ValidProto)

	ctx := testContext()
	globals := globalsFor(root)

	targetsCmd := cmd.TargetsCmd{}
	if err := targetsCmd.Run(globals, ctx); err != nil {
		t.Fatalf("TargetsCmd.Run() error = %v", err)
	}

	planCmd := cmd.PlanCmd{}
	if err := planCmd.Run(globals, ctx); err != nil {
		t.Fatalf("PlanCmd.Run() error = %v", err)
	}

	buildCmd := cmd.BuildCmd{}
	if err := buildCmd.Run(globals, ctx); err != nil {
		t.Fatalf("BuildCmd.Run() error = %v", err)
	}
}

func TestProtoWorkflowFailure(t *testing.T) {
	root := testhelpers.SetupTestWorkspace(t, `targets:
  - name: protos
    kind: proto
    srcs: ["proto/**/*.proto"]
`)
	testhelpers.CreateTestFile(t, root, "proto/broken.proto", testhelpers.BrokenProto)

	ctx := testContext()
	globals := globalsFor(root)
	globals.Quiet = true

	buildCmd := cmd.BuildCmd{}
	err := buildCmd.Run(globals, ctx)
	if err == nil {
		t.Fatal("BuildCmd.Run() error = nil, want build failure")
	}
	if !strings.Contains(err.Error(), constants.ErrMsgBuildFailed) {
		t.Errorf("BuildCmd.Run() error = %v, want %q", err, constants.ErrMsgBuildFailed)
	}
}

func TestJavaWorkflow(t *testing.T) {
	if _, err := exec.LookPath(constants.JavacBinary); err != nil {
		t.Skipf("javac not found on PATH: %v", err)
	}

	root := testhelpers.SetupTestWorkspace(t, `targets:
  - name: app
    kind: java
    srcs: ["src/**/*.java"]
    output: out/app
`)
	testhelpers.CreateTestFile(t, root, "src/A.java", testhelpers.ValidJava)

	ctx := testContext()
	globals := globalsFor(root)

	buildCmd := cmd.BuildCmd{}
	if err := buildCmd.Run(globals, ctx); err != nil {
		t.Fatalf("BuildCmd.Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "out", "app", "A.class")); err != nil {
		t.Errorf("expected compiled class file: %v", err)
	}

	// A broken source flips the same target to a failing build.
	testhelpers.CreateTestFile(t, root, "src/B.java", testhelpers.BrokenJava)
	globals.Quiet = true
	if err := buildCmd.Run(globals, ctx); err == nil {
		t.Error("BuildCmd.Run() error = nil, want build failure")
	}
}

func TestDoctor(t *testing.T) {
	ctx := testContext()
	globals := &cmd.GlobalOptions{}

	doctorCmd := cmd.DoctorCmd{}
	err := doctorCmd.Run(globals, ctx)
	if _, lookErr := exec.LookPath(constants.JavacBinary); lookErr != nil {
		if err == nil {
			t.Error("DoctorCmd.Run() error = nil without a JDK, want ErrNoCompiler")
		}
	} else if err != nil {
		t.Errorf("DoctorCmd.Run() error = %v with a JDK present", err)
	}
}
