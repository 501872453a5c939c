package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sftpbot/internal/domain"
)

func TestCleanup_EmptiesAllThreeDirectories(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})
	root := f.root
	f.repo.EXPECT().GetRoot(mock.Anything, uint(1)).Return(&root, nil).Once()

	for i, dir := range root.Dirs() {
		for _, name := range []string{"a.txt", "b.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{byte(i)}, 0644))
		}
	}
	require.NoError(t, os.Mkdir(filepath.Join(root.IncomingDir, "archive"), 0755))

	report, err := f.controller.Cleanup(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 6, report.Removed())
	require.Len(t, report.Dirs, 3)
	for _, d := range report.Dirs {
		assert.False(t, d.Missing)
		assert.Zero(t, d.Failed)
	}

	assert.Equal(t, []string{"archive"}, listDir(t, root.IncomingDir), "sub-directories are kept")
	assert.Empty(t, listDir(t, root.OutgoingDir))
	assert.Empty(t, listDir(t, root.ErrorDir))
}

func TestCleanup_MissingDirectoryIsReported(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})
	root := f.root
	require.NoError(t, os.RemoveAll(root.OutgoingDir))
	f.repo.EXPECT().GetRoot(mock.Anything, uint(1)).Return(&root, nil).Once()

	report, err := f.controller.Cleanup(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, report.Dirs, 3)
	assert.False(t, report.Dirs[0].Missing)
	assert.True(t, report.Dirs[1].Missing)
	assert.Equal(t, root.OutgoingDir, report.Dirs[1].Dir)
}

func TestCleanup_EmptyDirectoriesSucceed(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})
	root := f.root
	f.repo.EXPECT().GetRoot(mock.Anything, uint(1)).Return(&root, nil).Once()

	report, err := f.controller.Cleanup(context.Background(), 1)

	require.NoError(t, err)
	assert.Zero(t, report.Removed())
	assert.Equal(t, "test", report.Root.Name)
}

func TestCleanup_RootNotFound(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})
	f.repo.EXPECT().GetRoot(mock.Anything, uint(3)).Return(nil, domain.ErrRootNotFound).Once()

	_, err := f.controller.Cleanup(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}
