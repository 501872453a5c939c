package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sftpbot/test/integration/harness"
)

func TestCleanup(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dirs := env.NewRootDirs(true)
	env.AddRoot("acme", dirs)

	for _, dir := range []string{dirs.Incoming, dirs.Outgoing, dirs.Error} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "leftover.txt"), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dirs.Incoming, "keep"), 0755))

	result := harness.RunCommand(t, env, "cleanup", "1")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Cleaned root 'acme'")
	assert.DirExists(t, filepath.Join(dirs.Incoming, "keep"))
	_, err := os.Stat(filepath.Join(dirs.Incoming, "leftover.txt"))
	assert.True(t, os.IsNotExist(err))
	harness.AssertDirEmpty(t, dirs.Outgoing)
	harness.AssertDirEmpty(t, dirs.Error)
}

func TestCleanup_MissingDirectoriesSucceed(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.AddRoot("acme", env.NewRootDirs(false))

	result := harness.RunCommand(t, env, "cleanup", "1", "--format", "json")

	harness.AssertSuccess(t, result)
	var report map[string]any
	harness.AssertValidJSON(t, result, &report)
	assert.Len(t, report["dirs"], 3)
}

func TestCleanup_UnknownRoot(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "cleanup", "7")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "root not found")
}
