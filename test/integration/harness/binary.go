package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// BuildVersion is injected into the test binary, see --version
	BuildVersion = "integration"
)

var (
	binaryPath string
	buildErr   error
	buildOnce  sync.Once
)

// CommandResult holds the outcome of one CLI invocation
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd once per test run. Call it from TestMain.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}

		tempDir, err := os.MkdirTemp("", "shellbridge-integration-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tempDir, "shellbridge")

		cmd := exec.Command("go", "build",
			"-ldflags", "-X main.Version="+BuildVersion,
			"-o", binaryPath, "./cmd")
		cmd.Dir = root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		buildErr = cmd.Run()
	})
	return binaryPath, buildErr
}

// CleanupBinary removes the binary built by BuildBinary
func CleanupBinary() {
	if binaryPath != "" {
		_ = os.RemoveAll(filepath.Dir(binaryPath))
	}
}

// RunCommand runs the binary inside env with the default timeout
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout runs the binary inside env. Stdin is empty, never a terminal.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Dir = env.Home
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	var exitErr *exec.ExitError
	switch err := cmd.Run(); {
	case ctx.Err() != nil:
		tb.Logf("command timed out after %v: %v", timeout, args)
		exitCode = -1
	case errors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("command failed to run: %v", err)
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stderr:   stderr.String(),
		Stdout:   stdout.String(),
	}
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above working directory")
		}
		dir = parent
	}
}
