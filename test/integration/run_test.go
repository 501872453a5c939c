//go:build !windows

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sftpbot/test/integration/harness"
)

func TestRunPlain_PingPong(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dirs := env.NewRootDirs(false)
	env.AddRoot("acme", dirs)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "cases", "add", "1", "ping",
		"--pattern", "ping.txt", "--content", "pong"))

	bc := harness.StartCommand(t, env, "run", "1", "--plain")
	require.Eventually(t, func() bool {
		return strings.Contains(bc.Stdout(), "Watching")
	}, 10*time.Second, 50*time.Millisecond, "stderr: %s", bc.Stderr())

	// Directories are created by the session
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Incoming, "ping.txt"), []byte("anything"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Incoming, "other.txt"), []byte("anything"), 0644))

	reply := filepath.Join(dirs.Error, "ping.txt")
	require.Eventually(t, func() bool {
		_, err := os.Stat(reply)
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	assert.Eventually(t, func() bool {
		return strings.Contains(bc.Stdout(), "other.txt no match")
	}, 5*time.Second, 50*time.Millisecond)

	result := bc.Stop(t, os.Interrupt)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session ended")

	harness.AssertFileContent(t, reply, "pong")
	harness.AssertDirEmpty(t, dirs.Outgoing)

	// No session is running any more
	require.NoError(t, os.Remove(reply))
	require.NoError(t, os.Remove(filepath.Join(dirs.Incoming, "ping.txt")))
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Incoming, "ping.txt"), []byte("again"), 0644))
	time.Sleep(200 * time.Millisecond)
	harness.AssertDirEmpty(t, dirs.Error)
}

func TestRunPlain_SecondProcessIsLockedOut(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.AddRoot("acme", env.NewRootDirs(true))

	first := harness.StartCommand(t, env, "run", "1", "--plain")
	require.Eventually(t, func() bool {
		return strings.Contains(first.Stdout(), "Watching")
	}, 10*time.Second, 50*time.Millisecond)

	second := harness.RunCommand(t, env, "run", "1", "--plain")
	harness.AssertFailure(t, second)
	harness.AssertStderrContains(t, second, "session lock")

	harness.AssertSuccess(t, first.Stop(t, os.Interrupt))
}

func TestRun_UnknownRoot(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "run", "3", "--plain")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "root not found")
}
