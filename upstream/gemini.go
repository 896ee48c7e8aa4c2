package upstream

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	descriptionTokens = 200
	imageTokens       = 1024
)

// Gemini wraps the genai client for description and image prompts.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	return newGemini(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}, model)
}

func newGemini(ctx context.Context, cfg *genai.ClientConfig, model string) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("upstream: create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Describe asks for a short listing description. Blank answers are ErrEmptyResult.
func (g *Gemini) Describe(ctx context.Context, name, category string) (string, error) {
	text, err := g.generate(ctx, DescriptionPrompt(name, category), descriptionTokens)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

// GenerateImage returns whatever text the model produced for the image prompt.
func (g *Gemini) GenerateImage(ctx context.Context, category, product string) (string, error) {
	return g.generate(ctx, ImagePrompt(category, product), imageTokens)
}

func (g *Gemini) generate(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func DescriptionPrompt(name, category string) string {
	return fmt.Sprintf(`Generate a concise, accurate product description for %q in the %s category.

Requirements:
- Keep it under 100 words
- Be specific and accurate to the actual product
- Include relevant details like condition, features, or specifications
- Use a professional, e-commerce tone
- Focus on what makes this product valuable to buyers
- Don't make up features that aren't mentioned in the product name

Product: %s
Category: %s

Generate a compelling product description:`, name, category, name, category)
}

func ImagePrompt(category, product string) string {
	return fmt.Sprintf(`Create a clean, professional product image for %q in the %s category.
The image should be:
- Square aspect ratio (1:1)
- Clean white or light background
- Product-focused, not lifestyle
- High quality and detailed
- Suitable for e-commerce listing
- No text or watermarks
- Professional product photography style
- Make it look like the actual product: %s`, product, category, product)
}
