package storage

import (
	"github.com/renato0307/sftpbot/internal/domain"
)

// rootModelToDomain converts a RootModel (GORM) to domain.Root
func rootModelToDomain(m RootModel) domain.Root {
	return domain.Root{
		CreatedAt:   m.CreatedAt,
		ErrorDir:    m.ErrorDir,
		ID:          m.ID,
		IncomingDir: m.IncomingDir,
		Name:        m.Name,
		OutgoingDir: m.OutgoingDir,
	}
}

// domainToRootModel converts a domain.Root to RootModel (GORM)
func domainToRootModel(r domain.Root) RootModel {
	return RootModel{
		ErrorDir:    r.ErrorDir,
		ID:          r.ID,
		IncomingDir: r.IncomingDir,
		Name:        r.Name,
		OutgoingDir: r.OutgoingDir,
	}
}

// testCaseModelToDomain converts a TestCaseModel (GORM) to domain.TestCase
func testCaseModelToDomain(m TestCaseModel) domain.TestCase {
	return domain.TestCase{
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		ID:         m.ID,
		Kind:       domain.MatchKind(m.Kind),
		Name:       m.Name,
		OutputName: m.OutputName,
		Pattern:    m.Pattern,
		Position:   m.Position,
		RootID:     m.RootID,
		Target:     domain.Target(m.Target),
	}
}

// domainToTestCaseModel converts a domain.TestCase to TestCaseModel (GORM).
// Empty kind and target are stored with their defaults.
func domainToTestCaseModel(tc domain.TestCase) TestCaseModel {
	kind := tc.Kind
	if kind == "" {
		kind = domain.MatchExact
	}
	return TestCaseModel{
		Content:    tc.Content,
		ID:         tc.ID,
		Kind:       string(kind),
		Name:       tc.Name,
		OutputName: tc.OutputName,
		Pattern:    tc.Pattern,
		Position:   tc.Position,
		RootID:     tc.RootID,
		Target:     string(tc.EffectiveTarget()),
	}
}
