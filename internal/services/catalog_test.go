package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sftpbot/internal/domain"
	portsmocks "github.com/renato0307/sftpbot/internal/ports/mocks"
)

func TestCatalogAddRoot_StoresAbsolutePaths(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	svc := NewCatalogService(repo)
	base := t.TempDir()

	repo.EXPECT().
		AddRoot(mock.Anything, mock.MatchedBy(func(r domain.Root) bool {
			return r.Name == "acme" &&
				filepath.IsAbs(r.IncomingDir) &&
				r.OutgoingDir == filepath.Join(base, "out")
		})).
		RunAndReturn(func(_ context.Context, r domain.Root) (*domain.Root, error) {
			r.ID = 7
			return &r, nil
		}).
		Once()

	created, err := svc.AddRoot(context.Background(), AddRootParams{
		Name:        "acme",
		IncomingDir: filepath.Join(base, "in"),
		OutgoingDir: filepath.Join(base, "out"),
		ErrorDir:    filepath.Join(base, "err"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
}

func TestCatalogAddRoot_InvalidIsRejectedBeforeStorage(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	svc := NewCatalogService(repo)

	_, err := svc.AddRoot(context.Background(), AddRootParams{
		Name:        "acme",
		IncomingDir: "/srv/x",
		OutgoingDir: "/srv/x",
		ErrorDir:    "/srv/err",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRoot)
}

func TestCatalogAddRoot_DuplicateName(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	svc := NewCatalogService(repo)
	repo.EXPECT().AddRoot(mock.Anything, mock.Anything).Return(nil, domain.ErrRootExists).Once()

	_, err := svc.AddRoot(context.Background(), AddRootParams{
		Name:        "acme",
		IncomingDir: "/srv/in",
		OutgoingDir: "/srv/out",
		ErrorDir:    "/srv/err",
	})

	assert.ErrorIs(t, err, domain.ErrRootExists)
}

func TestCatalogAddTestCase_Validates(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	svc := NewCatalogService(repo)

	_, err := svc.AddTestCase(context.Background(), domain.TestCase{RootID: 1, Name: "bad", Kind: domain.MatchRegex, Pattern: "("})

	assert.ErrorIs(t, err, domain.ErrInvalidTestCase)
}

func TestCatalogAddTestCase_Stores(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	svc := NewCatalogService(repo)
	tc := domain.TestCase{RootID: 1, Name: "ping", Pattern: "ping.txt", Content: []byte("pong")}

	stored := tc
	stored.ID = 3
	stored.Position = 2
	repo.EXPECT().AddTestCase(mock.Anything, tc).Return(&stored, nil).Once()

	created, err := svc.AddTestCase(context.Background(), tc)

	require.NoError(t, err)
	assert.Equal(t, 2, created.Position)
}

func TestCatalogListTestCases_UnknownRoot(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	svc := NewCatalogService(repo)
	repo.EXPECT().GetRoot(mock.Anything, uint(4)).Return(nil, domain.ErrRootNotFound).Once()

	_, err := svc.ListTestCases(context.Background(), 4)

	assert.ErrorIs(t, err, domain.ErrRootNotFound)
}

func TestCatalogDeleteRoot(t *testing.T) {
	repo := portsmocks.NewMockRootRepository(t)
	svc := NewCatalogService(repo)
	repo.EXPECT().DeleteRoot(mock.Anything, uint(1)).Return(nil).Once()

	assert.NoError(t, svc.DeleteRoot(context.Background(), 1))
}
