package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/renato0307/sftpbot/internal/config"
	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/ports"
)

// CatalogService manages roots and their test cases
type CatalogService struct {
	repo ports.RootRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo ports.RootRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// AddRootParams contains parameters for creating a root
type AddRootParams struct {
	ErrorDir    string
	IncomingDir string
	Name        string
	OutgoingDir string
}

// AddRoot validates and stores a new root. Directory paths are expanded and made absolute.
func (s *CatalogService) AddRoot(ctx context.Context, params AddRootParams) (*domain.Root, error) {
	logging.Logger.Info("Adding root", "name", params.Name)

	root := domain.Root{Name: params.Name}
	for _, p := range []struct {
		dst *string
		src string
	}{
		{&root.IncomingDir, params.IncomingDir},
		{&root.OutgoingDir, params.OutgoingDir},
		{&root.ErrorDir, params.ErrorDir},
	} {
		if p.src == "" {
			continue
		}
		abs, err := filepath.Abs(config.ExpandPath(p.src))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRoot, err)
		}
		*p.dst = abs
	}

	if err := root.Validate(); err != nil {
		logging.Logger.Warn("Rejected invalid root", "name", params.Name, "error", err)
		return nil, err
	}

	created, err := s.repo.AddRoot(ctx, root)
	if err != nil {
		logging.Logger.Error("Failed to add root", "name", params.Name, "error", err)
		return nil, err
	}

	logging.Logger.Info("Root added", "id", created.ID, "name", created.Name)
	return created, nil
}

// GetRoot returns the root with the given id
func (s *CatalogService) GetRoot(ctx context.Context, id uint) (*domain.Root, error) {
	return s.repo.GetRoot(ctx, id)
}

// ListRoots returns all roots ordered by id
func (s *CatalogService) ListRoots(ctx context.Context) ([]domain.Root, error) {
	return s.repo.ListRoots(ctx)
}

// DeleteRoot removes a root and its test cases. Directories on disk are left alone.
func (s *CatalogService) DeleteRoot(ctx context.Context, id uint) error {
	logging.Logger.Info("Deleting root", "id", id)
	if err := s.repo.DeleteRoot(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete root", "id", id, "error", err)
		return err
	}
	return nil
}

// AddTestCase validates and appends a test case to its root
func (s *CatalogService) AddTestCase(ctx context.Context, tc domain.TestCase) (*domain.TestCase, error) {
	logging.Logger.Info("Adding test case",
		"root_id", tc.RootID,
		"name", tc.Name,
		"kind", tc.Kind,
		"pattern", tc.Pattern)

	if err := tc.Validate(); err != nil {
		logging.Logger.Warn("Rejected invalid test case", "name", tc.Name, "error", err)
		return nil, err
	}

	created, err := s.repo.AddTestCase(ctx, tc)
	if err != nil {
		logging.Logger.Error("Failed to add test case", "name", tc.Name, "error", err)
		return nil, err
	}

	logging.Logger.Info("Test case added", "id", created.ID, "position", created.Position)
	return created, nil
}

// ListTestCases returns the ordered test cases of a root
func (s *CatalogService) ListTestCases(ctx context.Context, rootID uint) ([]domain.TestCase, error) {
	if _, err := s.repo.GetRoot(ctx, rootID); err != nil {
		return nil, err
	}
	return s.repo.ListTestCases(ctx, rootID)
}

// DeleteTestCase removes a test case
func (s *CatalogService) DeleteTestCase(ctx context.Context, id uint) error {
	logging.Logger.Info("Deleting test case", "id", id)
	return s.repo.DeleteTestCase(ctx, id)
}
