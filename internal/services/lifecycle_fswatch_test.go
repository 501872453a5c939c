package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sftpbot/internal/adapters/fswatch"
	"github.com/renato0307/sftpbot/internal/domain"
	portsmocks "github.com/renato0307/sftpbot/internal/ports/mocks"
)

// Drives a session over a real directory watch: ping.txt dropped into
// incoming produces pong in error, and nothing happens after End.
func TestSession_PingPongOverFilesystem(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	root := newTestRoot(t)
	repo.EXPECT().GetRoot(mock.Anything, uint(1)).Return(&root, nil).Once()
	repo.EXPECT().ListTestCases(mock.Anything, uint(1)).Return([]domain.TestCase{pingCase}, nil).Once()

	controller := NewLifecycleController(repo, repo, fswatch.NewWatcher(), NewMatchEngine(), LifecycleOptions{})

	_, err := controller.Begin(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root.IncomingDir, "ping.txt"), []byte("anything"), 0644))

	reply := filepath.Join(root.ErrorDir, "ping.txt")
	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(reply)
		return err == nil && string(data) == "pong"
	}, 3*time.Second, 20*time.Millisecond)
	assert.Empty(t, listDir(t, root.OutgoingDir))

	end := controller.End()
	require.True(t, end.Stopped)
	require.NoError(t, os.Remove(reply))
	require.NoError(t, os.Remove(filepath.Join(root.IncomingDir, "ping.txt")))

	require.NoError(t, os.WriteFile(filepath.Join(root.IncomingDir, "ping.txt"), []byte("again"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, listDir(t, root.ErrorDir))
}
