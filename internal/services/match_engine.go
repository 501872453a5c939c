package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
)

// MatchEngine turns arrivals into output files using a root's rule set
type MatchEngine struct {
	fileMode os.FileMode
}

// NewMatchEngine creates a new MatchEngine
func NewMatchEngine() *MatchEngine {
	return &MatchEngine{fileMode: 0644}
}

// Dispatch evaluates the rule set in order and performs the first matching
// rule's write. The arrived file itself is never read.
func (e *MatchEngine) Dispatch(
	ctx context.Context,
	root domain.Root,
	rules domain.RuleSet,
	arrival domain.Arrival,
) domain.DispatchResult {
	filename := arrival.Filename()
	result := domain.DispatchResult{Arrival: arrival}

	tc, ok := rules.Match(filename)
	if !ok {
		logging.Logger.Debug("No test case matched arrival, dropping",
			"root", root.Name,
			"file", filename,
			"rules", rules.Len())
		result.Outcome = domain.OutcomeNoMatch
		return result
	}
	result.TestCase = &tc

	if err := ctx.Err(); err != nil {
		result.Outcome = domain.OutcomeFailed
		result.Err = err
		return result
	}

	dir := root.DirFor(tc.EffectiveTarget())
	outputPath := filepath.Join(dir, tc.OutputFileName(filename))
	result.OutputPath = outputPath

	logging.Logger.Debug("Test case matched arrival",
		"root", root.Name,
		"file", filename,
		"test_case", tc.Name,
		"target", tc.EffectiveTarget(),
		"output", outputPath)

	if err := os.WriteFile(outputPath, tc.Content, e.fileMode); err != nil {
		logging.Logger.Error("Failed to write test case output",
			"root", root.Name,
			"test_case", tc.Name,
			"output", outputPath,
			"error", err)
		result.Outcome = domain.OutcomeFailed
		result.Err = fmt.Errorf("failed to write %s: %w", outputPath, err)
		return result
	}

	logging.Logger.Info("Wrote test case output",
		"root", root.Name,
		"test_case", tc.Name,
		"output", outputPath,
		"bytes", len(tc.Content))
	result.Outcome = domain.OutcomeMatched
	return result
}
