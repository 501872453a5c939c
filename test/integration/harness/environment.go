package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own SFTPBOT_HOME.
type TestEnvironment struct {
	SftpbotHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// RootDirs are the three directories of a root created for a test
type RootDirs struct {
	Error    string
	Incoming string
	Outgoing string
}

// NewTestEnvironment creates an isolated test environment with a temp SFTPBOT_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		SftpbotHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out SFTPBOT_* variables and sets:
//   - SFTPBOT_HOME to the temp directory
//   - SFTPBOT_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, "SFTPBOT_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SFTPBOT_HOME="+e.SftpbotHome,
		"SFTPBOT_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.SftpbotHome, "state.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// NewRootDirs returns paths for a root's directories under a fresh temp dir.
// When create is false the directories do not exist yet.
func (e *TestEnvironment) NewRootDirs(create bool) RootDirs {
	e.tb.Helper()

	base := e.tb.TempDir()
	dirs := RootDirs{
		Error:    filepath.Join(base, "error"),
		Incoming: filepath.Join(base, "incoming"),
		Outgoing: filepath.Join(base, "outgoing"),
	}
	if create {
		for _, dir := range []string{dirs.Incoming, dirs.Outgoing, dirs.Error} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				e.tb.Fatalf("Failed to create %s: %v", dir, err)
			}
		}
	}
	return dirs
}

// AddRoot registers a root through the CLI and fails the test on error
func (e *TestEnvironment) AddRoot(name string, dirs RootDirs) {
	e.tb.Helper()

	result := RunCommand(e.tb, e, "roots", "add", name,
		"--incoming", dirs.Incoming,
		"--outgoing", dirs.Outgoing,
		"--error", dirs.Error)
	AssertSuccess(e.tb, result)
}
