// Package integration_test provides end-to-end tests for sftpbot CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated SFTPBOT_HOME to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/renato0307/sftpbot/test/integration/harness"
)

func TestMain(m *testing.M) {
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}
