package summarizer

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithText(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text(text)},
				},
			},
		},
	}
}

func TestDecodeSummary(t *testing.T) {
	t.Run("decodes the structured output", func(t *testing.T) {
		resp := responseWithText(`{"summary": "A small web framework.", "cool_facts": ["Zero dependencies", "Fast router"]}`)

		summary, err := decodeSummary(resp)
		require.NoError(t, err)
		assert.Equal(t, "A small web framework.", summary.Summary)
		assert.Equal(t, []string{"Zero dependencies", "Fast router"}, summary.CoolFacts)
	})

	t.Run("empty candidate list is an error", func(t *testing.T) {
		_, err := decodeSummary(&genai.GenerateContentResponse{})
		assert.Error(t, err)
	})

	t.Run("candidate without content is an error", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}
		_, err := decodeSummary(resp)
		assert.Error(t, err)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		_, err := decodeSummary(responseWithText("not json"))
		assert.Error(t, err)
	})
}
