package harness

import (
	"bytes"
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles the sftpbot binary once per test run.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		tempDir, err := os.MkdirTemp("", "sftpbot-integration-test-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryPath = filepath.Join(tempDir, "sftpbot")

		projectRoot, err := findProjectRoot()
		if err != nil {
			buildErr = err
			return
		}

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd")
		cmd.Dir = projectRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		buildErr = cmd.Run()
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath != "" {
		if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
			log.Printf("Warning: failed to cleanup binary directory: %v", err)
		}
	}
}

// RunCommand executes the sftpbot binary with given arguments using default timeout.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout executes the sftpbot binary with given arguments and timeout.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	err := cmd.Run()

	exitCode := 0
	if ctx.Err() == context.DeadlineExceeded {
		tb.Logf("Command timed out after %v: %v %v", timeout, binaryPath, args)
		exitCode = -1
	} else if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		tb.Logf("Command execution error: %v", err)
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}

// BackgroundCommand is a long-running sftpbot process such as "run --plain"
type BackgroundCommand struct {
	Cmd    *exec.Cmd
	done   chan struct{}
	err    error
	stderr *syncBuffer
	stdout *syncBuffer
}

// StartCommand starts the binary without waiting for it. The process is
// killed when the test ends if it is still running.
func StartCommand(tb testing.TB, env *TestEnvironment, args ...string) *BackgroundCommand {
	tb.Helper()

	bc := &BackgroundCommand{
		Cmd:    exec.Command(binaryPath, args...),
		stderr: &syncBuffer{},
		done:   make(chan struct{}),
		stdout: &syncBuffer{},
	}
	bc.Cmd.Stdout = bc.stdout
	bc.Cmd.Stderr = bc.stderr
	bc.Cmd.Env = env.Environ()

	if err := bc.Cmd.Start(); err != nil {
		tb.Fatalf("Failed to start %v: %v", args, err)
	}
	go func() {
		bc.err = bc.Cmd.Wait()
		close(bc.done)
	}()

	tb.Cleanup(func() {
		select {
		case <-bc.done:
		default:
			_ = bc.Cmd.Process.Kill()
			<-bc.done
		}
	})
	return bc
}

// Stdout returns what the process has written so far
func (bc *BackgroundCommand) Stdout() string {
	return bc.stdout.String()
}

// Stderr returns what the process has written so far
func (bc *BackgroundCommand) Stderr() string {
	return bc.stderr.String()
}

// Stop sends sig and waits for the process to exit
func (bc *BackgroundCommand) Stop(tb testing.TB, sig os.Signal) CommandResult {
	tb.Helper()

	if err := bc.Cmd.Process.Signal(sig); err != nil {
		tb.Fatalf("Failed to signal process: %v", err)
	}

	exitCode := 0
	select {
	case <-bc.done:
		if exitErr, ok := bc.err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else if bc.err != nil {
			exitCode = -1
		}
	case <-time.After(defaultTimeout):
		tb.Fatalf("Process did not exit after %v", sig)
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   bc.Stdout(),
		Stderr:   bc.Stderr(),
	}
}

type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// findProjectRoot uses go list to find the module root directory.
func findProjectRoot() (string, error) {
	cmd := exec.Command("go", "list", "-m", "-f", "{{.Dir}}")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
