package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
)

// ErrEmptyResponse is returned when the API answers with no candidates
// or no text parts.
var ErrEmptyResponse = errors.New("empty gemini response")

// Generator is the generation surface consumed by the router and the
// specialist agents. Implementations may fail on any call; callers own
// their recovery path.
type Generator interface {
	// GenerateText sends a text-only prompt and returns the response text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateVision sends a prompt together with inline image data and
	// returns the response text.
	GenerateVision(ctx context.Context, prompt, mimeType string, data []byte) (string, error)
}

var _ Generator = (*Client)(nil)

// GenerateText sends a single-turn text prompt and returns the first
// candidate's text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.GenerateContent(ctx, GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// GenerateVision sends a prompt plus an inline image and returns the
// first candidate's text.
func (c *Client) GenerateVision(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	resp, err := c.GenerateContent(ctx, GenerateRequest{
		Contents: []Content{
			{
				Role: "user",
				Parts: []Part{
					{Text: prompt},
					{InlineData: &Blob{
						MIMEType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(data),
					}},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

func firstText(resp *GenerateResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
