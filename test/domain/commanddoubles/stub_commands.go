//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/ghlink/internal/domain/commands"
	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// StubParseCommand is a stub implementation of commands.Parse.
type StubParseCommand struct {
	ExecuteCallCount int
	Results          []commands.ParseResult
	LastURLs         []string
}

var _ commands.Parse = (*StubParseCommand)(nil)

func (s *StubParseCommand) Execute(_ context.Context, urls []string) []commands.ParseResult {
	s.ExecuteCallCount++
	s.LastURLs = urls
	return s.Results
}

// StubReportCommand is a stub implementation of commands.Report.
type StubReportCommand struct {
	ExecuteCallCount int
	Reports          []entities.RootReport
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ReportOptions
}

var _ commands.Report = (*StubReportCommand)(nil)

func (s *StubReportCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ReportOptions,
) ([]entities.RootReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Reports, s.ExecuteErr
}

// StubLocalCommand is a stub implementation of commands.Local.
type StubLocalCommand struct {
	ExecuteCallCount int
	Report           *entities.RootReport
	ExecuteErr       error
	LastOpts         commands.LocalOptions
}

var _ commands.Local = (*StubLocalCommand)(nil)

func (s *StubLocalCommand) Execute(
	_ context.Context,
	opts commands.LocalOptions,
) (*entities.RootReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
