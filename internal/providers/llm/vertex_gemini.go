package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

type VertexGemini struct {
	client    *vertexgenai.Client
	modelName string
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	return &VertexGemini{client: c, modelName: modelName}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Generate(ctx context.Context, systemInstruction, userMessage string) (string, error) {
	// A fresh model value per call; the system instruction varies with
	// the retrieved corpus, and model values must not be shared mutably.
	m := v.client.GenerativeModel(v.modelName)
	m.SystemInstruction = &vertexgenai.Content{
		Parts: []vertexgenai.Part{vertexgenai.Text(systemInstruction)},
	}

	resp, err := m.GenerateContent(ctx, vertexgenai.Text(userMessage))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("provider returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(vertexgenai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("provider returned empty content")
	}
	return b.String(), nil
}
