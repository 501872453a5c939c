// Package harness provides utilities for integration testing the sftpbot CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - SFTPBOT_HOME: Isolated per test (temp directory)
//   - SFTPBOT_DEBUG: Disabled to reduce noise
package harness
