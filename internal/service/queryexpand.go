package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/domain"
	"github.com/tyler/huntboard/internal/prompts"
)

// QueryGenerator expands a free-text job description into several alternate
// search-engine queries by prompting a generative-language model.
type QueryGenerator struct {
	model llms.Model
}

// NewQueryGenerator creates a QueryGenerator backed by the Google AI API.
// Parameters:
//   - ctx: context for client initialization.
//   - cfg: generative-language settings including the API key and model name.
// Returns:
//   - *QueryGenerator: initialized generator.
//   - error: non-nil if the client cannot be created.
func NewQueryGenerator(ctx context.Context, cfg *config.GenAIConfig) (*QueryGenerator, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	return &QueryGenerator{model: llm}, nil
}

// NewQueryGeneratorWithModel creates a QueryGenerator around an existing model.
// Used by tests to inject a fake.
func NewQueryGeneratorWithModel(model llms.Model) *QueryGenerator {
	return &QueryGenerator{model: model}
}

// Generate produces up to n search queries for the given description.
// A failed call or unparsable output fails the whole attempt; there is no
// partial or fallback generation.
// Parameters:
//   - ctx: context for cancellation.
//   - description: user's free-text job description.
//   - n: desired number of queries.
// Returns:
//   - []domain.SearchQuery: ordered queries, at most n.
//   - error: wraps ErrQueryGeneration on any failure.
func (g *QueryGenerator) Generate(ctx context.Context, description string, n int) ([]domain.SearchQuery, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompts.QueryGeneration(description, n))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryGeneration, err)
	}

	queries, err := parseQueries(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryGeneration, err)
	}
	if len(queries) > n {
		queries = queries[:n]
	}
	return queries, nil
}

// parseQueries decodes the model output into search queries, tolerating a
// code-fence wrapper around the JSON array.
func parseQueries(text string) ([]domain.SearchQuery, error) {
	cleaned := stripCodeFences(text)

	var queries []domain.SearchQuery
	if err := json.Unmarshal([]byte(cleaned), &queries); err != nil {
		return nil, fmt.Errorf("model output is not a JSON query array: %w", err)
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("model returned an empty query array")
	}
	return queries, nil
}

// stripCodeFences removes a leading/trailing markdown code fence, with or
// without a language tag.
func stripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
