package commands

import (
	"context"

	"github.com/rios0rios0/ghlink/internal/domain/entities"
)

// Parse is the interface for the parse command.
type Parse interface {
	Execute(ctx context.Context, urls []string) []ParseResult
}

// ParseResult pairs a remote URL with the repository it resolves to, if any.
type ParseResult struct {
	URL        string                       `yaml:"url"`
	Repository *entities.RepositoryIdentity `yaml:"repository,omitempty"`
}

// ParseCommand resolves raw remote URLs to repository identities.
type ParseCommand struct{}

// NewParseCommand creates a new ParseCommand.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{}
}

// Execute resolves every URL, keeping the input order.
func (it *ParseCommand) Execute(_ context.Context, urls []string) []ParseResult {
	results := make([]ParseResult, 0, len(urls))
	for _, url := range urls {
		results = append(results, ParseResult{
			URL:        url,
			Repository: entities.GetGitHubInfoFromURL(url),
		})
	}
	return results
}
