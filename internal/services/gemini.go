package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// LanguageModel turns a prompt into a completion. Implementations make a
// single blocking call and return its error unchanged in meaning.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiClient(apiKey, modelName string, temperature float32) (LanguageModel, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		modelName:   modelName,
		temperature: temperature,
	}, nil
}

// Complete implements LanguageModel.
func (g *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
