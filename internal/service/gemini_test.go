package service

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"skillGaps":`), genai.Text(`[]}`)}},
		}},
	}
	text, err := geminiText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"skillGaps":[]}`, text)
}

func TestGeminiTextEmpty(t *testing.T) {
	_, err := geminiText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = geminiText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
	assert.Error(t, err)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.Error(t, err)
}
