package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sftpbot/test/integration/harness"
)

func TestRootsList(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "list empty returns success",
			args: []string{"roots", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Total: 0 roots")
			},
		},
		{
			name: "list with two roots",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.AddRoot("acme", env.NewRootDirs(true))
				env.AddRoot("globex", env.NewRootDirs(true))
			},
			args: []string{"roots", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "acme")
				harness.AssertStdoutContains(t, result, "globex")
				harness.AssertStdoutContains(t, result, "Total: 2 roots")
			},
		},
		{
			name: "list JSON format",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.AddRoot("acme", env.NewRootDirs(true))
			},
			args: []string{"roots", "list", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var roots []map[string]any
				harness.AssertValidJSON(t, result, &roots)
				require.Len(t, roots, 1)
				assert.Equal(t, "acme", roots[0]["Name"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestRootsAdd_Rejections(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.AddRoot("acme", env.NewRootDirs(true))

		dirs := env.NewRootDirs(true)
		result := harness.RunCommand(t, env, "roots", "add", "acme",
			"--incoming", dirs.Incoming, "--outgoing", dirs.Outgoing, "--error", dirs.Error)

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "already exists")
	})

	t.Run("incoming equals outgoing", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		dirs := env.NewRootDirs(true)

		result := harness.RunCommand(t, env, "roots", "add", "acme",
			"--incoming", dirs.Incoming, "--outgoing", dirs.Incoming, "--error", dirs.Error)

		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "must differ")
	})

	t.Run("missing error flag", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		dirs := env.NewRootDirs(true)

		result := harness.RunCommand(t, env, "roots", "add", "acme",
			"--incoming", dirs.Incoming, "--outgoing", dirs.Outgoing)

		harness.AssertFailure(t, result)
	})
}

func TestRootsViewAndDelete(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.AddRoot("acme", env.NewRootDirs(true))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "cases", "add", "1", "ping", "--pattern", "ping.txt", "--content", "pong"))

	result := harness.RunCommand(t, env, "roots", "view", "1")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Root: acme")
	harness.AssertStdoutContains(t, result, "ping")

	result = harness.RunCommand(t, env, "roots", "del", "1", "--force")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "deleted successfully")

	result = harness.RunCommand(t, env, "roots", "view", "1")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "root not found")
}
