package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	output string
	err    error
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.output}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return m.output, m.err
}

func TestQueryGeneratorGenerate(t *testing.T) {
	gen := NewQueryGeneratorWithModel(&fakeModel{
		output: `[
			{"id": "1", "query": "senior golang developer", "category": "direct"},
			{"id": "2", "query": "backend engineer go kubernetes", "category": "skills"},
			{"id": "3", "query": "golang microservices remote", "category": "related"}
		]`,
	})

	queries, err := gen.Generate(context.Background(), "golang developer", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queries) != 3 {
		t.Fatalf("expected 3 queries, got %d", len(queries))
	}
	if queries[0].Query != "senior golang developer" {
		t.Errorf("first query = %q", queries[0].Query)
	}
	if queries[1].Category != "skills" {
		t.Errorf("second category = %q", queries[1].Category)
	}
}

func TestQueryGeneratorTruncates(t *testing.T) {
	gen := NewQueryGeneratorWithModel(&fakeModel{
		output: `[{"id":"1","query":"a"},{"id":"2","query":"b"},{"id":"3","query":"c"},{"id":"4","query":"d"}]`,
	})

	queries, err := gen.Generate(context.Background(), "golang developer", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queries) != 2 {
		t.Errorf("expected truncation to 2 queries, got %d", len(queries))
	}
}

func TestQueryGeneratorModelFailure(t *testing.T) {
	gen := NewQueryGeneratorWithModel(&fakeModel{err: errors.New("quota exceeded")})

	_, err := gen.Generate(context.Background(), "golang developer", 3)
	if !errors.Is(err, ErrQueryGeneration) {
		t.Errorf("expected ErrQueryGeneration, got %v", err)
	}
}

func TestQueryGeneratorBadOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"prose instead of json", "Here are some queries you could try."},
		{"empty array", "[]"},
		{"object instead of array", `{"query": "golang"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewQueryGeneratorWithModel(&fakeModel{output: tt.output})
			_, err := gen.Generate(context.Background(), "golang developer", 3)
			if !errors.Is(err, ErrQueryGeneration) {
				t.Errorf("expected ErrQueryGeneration, got %v", err)
			}
		})
	}
}

func TestParseQueriesWithCodeFence(t *testing.T) {
	fenced := "```json\n[{\"id\":\"1\",\"query\":\"golang developer\",\"category\":\"direct\"}]\n```"

	queries, err := parseQueries(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queries) != 1 || queries[0].Query != "golang developer" {
		t.Errorf("unexpected result: %+v", queries)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", `[1]`, `[1]`},
		{"plain fence", "```\n[1]\n```", `[1]`},
		{"json fence", "```json\n[1]\n```", `[1]`},
		{"surrounding whitespace", "  \n```json\n[1]\n```\n  ", `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.input); got != tt.expected {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
