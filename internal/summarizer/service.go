package summarizer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

const systemPrompt = "You are a helpful assistant for analyzing GitHub repositories. " +
	"You will be provided with the README content of a repository. " +
	"Summarize this github repository from this readme file content. " +
	"Your response should contain a concise summary of the repository and a list of " +
	"cool or interesting facts about the repo, such as unique features, technologies " +
	"used, notable design decisions, or fun insights."

// RepoSummary is the structured output of a summarization call.
type RepoSummary struct {
	Summary   string   `json:"summary"`
	CoolFacts []string `json:"cool_facts"`
}

// Service wraps a Gemini model configured for structured JSON output.
type Service struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewService creates a summarizer backed by the Gemini API.
func NewService(ctx context.Context, apiKey string) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := client.GenerativeModel(defaultModel)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "A concise summary of the GitHub repository",
			},
			"cool_facts": {
				Type:        genai.TypeArray,
				Description: "List of cool or interesting facts about the repository",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"summary", "cool_facts"},
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &Service{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (s *Service) Close() error {
	return s.client.Close()
}

// SummarizeReadme sends the README content to the model and decodes the
// structured summary from its response.
func (s *Service) SummarizeReadme(ctx context.Context, readmeContent string) (*RepoSummary, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(readmeContent))
	if err != nil {
		return nil, fmt.Errorf("summarization request failed: %w", err)
	}
	return decodeSummary(resp)
}

func decodeSummary(resp *genai.GenerateContentResponse) (*RepoSummary, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("model returned an empty response")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("model returned a non-text part")
	}

	var summary RepoSummary
	if err := json.Unmarshal([]byte(text), &summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	return &summary, nil
}
