package javac

import (
	"bytes"
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/errors"
	"github.com/javelin-build/javelin/internal/logger"
	"github.com/javelin-build/javelin/internal/step"
	"github.com/javelin-build/javelin/internal/utils"
)

// Result is the outcome of a single compiler invocation.
type Result struct {
	Success     bool
	Diagnostics []step.Diagnostic
}

// Toolchain is the narrow seam to whatever Java compiler is available in the
// running environment. Implementations run one compilation synchronously and
// collect diagnostics; they do not retry.
type Toolchain interface {
	Compile(ctx context.Context, options, sources []string) (*Result, error)
}

// SystemToolchain binds the seam to the javac executable found on PATH.
// The lookup happens per invocation, so constructing a SystemToolchain is
// free and never fails.
type SystemToolchain struct {
	// Binary overrides the executable name, mainly for tests.
	Binary string
	// WorkDir is the working directory for compiler invocations. Empty runs
	// the compiler in the caller's working directory.
	WorkDir string
}

// binary returns the executable name to look up.
func (t *SystemToolchain) binary() string {
	if t.Binary != "" {
		return t.Binary
	}
	return constants.JavacBinary
}

// lookPath resolves the compiler executable. A missing compiler is a fatal
// environment misconfiguration, reported as errors.ErrNoCompiler.
func (t *SystemToolchain) lookPath() (string, error) {
	path, err := exec.LookPath(t.binary())
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrNoCompiler, err)
	}
	return path, nil
}

// Compile runs javac with the given options and source files, blocking until
// it completes. Compiler errors are returned inside the Result; a non-nil
// error means the compiler could not be run at all.
func (t *SystemToolchain) Compile(ctx context.Context, options, sources []string) (*Result, error) {
	bin, err := t.lookPath()
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(options)+len(sources))
	args = append(args, options...)
	args = append(args, sources...)

	// Diagnostics are matched by their English wording, so pin the locale.
	var stderr bytes.Buffer
	cmd := newJavacCmd(bin, args...).Dir(t.WorkDir).Env("LC_ALL=C.UTF-8")
	if err := cmd.Run(ctx, &stderr); err != nil {
		var exitErr *exec.ExitError
		if !goerrors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", bin, err)
		}
		return &Result{
			Success:     false,
			Diagnostics: FailureDiagnostics(stderr.Bytes()),
		}, nil
	}

	// Warnings and notes can show up even on success.
	return &Result{
		Success:     true,
		Diagnostics: ParseDiagnostics(stderr.Bytes()),
	}, nil
}

// Version returns the toolchain version string, e.g. "javac 17.0.2".
func (t *SystemToolchain) Version(ctx context.Context) (string, error) {
	bin, err := t.lookPath()
	if err != nil {
		return "", err
	}
	// javac historically printed -version to stderr, modern JDKs use stdout.
	out, err := exec.CommandContext(ctx, bin, "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("run %s -version: %w", bin, err)
	}
	return utils.TrimOutputToString(out), nil
}

// javacCmd is a helper for executing the compiler.
type javacCmd struct {
	bin  string
	args []string
	dir  string
	env  []string
}

// newJavacCmd creates a new compiler command.
func newJavacCmd(bin string, args ...string) *javacCmd {
	return &javacCmd{
		bin:  bin,
		args: args,
	}
}

// Dir sets the working directory.
func (c *javacCmd) Dir(dir string) *javacCmd {
	c.dir = dir
	return c
}

// Env adds environment variables.
func (c *javacCmd) Env(env ...string) *javacCmd {
	c.env = append(c.env, env...)
	return c
}

// toExecCmd converts to an exec.Cmd with stderr captured into the buffer.
func (c *javacCmd) toExecCmd(ctx context.Context, stderr *bytes.Buffer) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.bin, c.args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	if len(c.env) > 0 {
		cmd.Env = append(os.Environ(), c.env...)
	}
	cmd.Stderr = stderr
	return cmd
}

// Run executes the command, capturing stderr into the given buffer.
func (c *javacCmd) Run(ctx context.Context, stderr *bytes.Buffer) error {
	logger.Log(ctx).Debug().
		Str("bin", c.bin).
		Strs("args", c.args).
		Str("dir", c.dir).
		Msg("Executing compiler command")
	return c.toExecCmd(ctx, stderr).Run()
}
