// Package gemini implements the remote generation collaborator using
// Google Gemini. Failures are translated into the application's closed
// error-code set at this boundary so the translation client never
// inspects error text.
package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/mwielbut/noveltrans"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements noveltrans.Generator at compile time.
var _ noveltrans.Generator = (*Generator)(nil)

// Generator sends prompts to the Gemini generation endpoint.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects
// DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends the prompt and returns the model's text output.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", noveltrans.Errorf(noveltrans.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", ClassifyError(err)
	}
	if result == nil {
		return "", noveltrans.Errorf(noveltrans.EINTERNAL, "gemini returned nil result")
	}

	if len(result.Candidates) > 0 {
		switch result.Candidates[0].FinishReason {
		case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent:
			return "", noveltrans.Errorf(noveltrans.EBLOCKED, "output blocked by safety policy")
		case genai.FinishReasonMaxTokens:
			return "", noveltrans.Errorf(noveltrans.ETRUNCATED, "output truncated by length limit")
		}
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", noveltrans.Errorf(noveltrans.EINTERNAL, "gemini returned empty output")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for translation calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a professional literary translator. Return only the translated text, preserving the paragraph structure of the input. Do not add commentary, notes, or headings.",
			}},
		},
		Temperature: &temp,
	}
}

// ClassifyError maps a Gemini call failure onto the application error
// codes. API errors carry a structured status code; anything else is a
// transport failure and therefore retryable.
func ClassifyError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return noveltrans.WrapErrorf(err, noveltrans.ERATELIMITED, "gemini rate limited")
		case apiErr.Code == 401 || apiErr.Code == 403:
			return noveltrans.WrapErrorf(err, noveltrans.EUNAUTHORIZED, "invalid gemini credentials")
		case apiErr.Code == 404:
			return noveltrans.WrapErrorf(err, noveltrans.ENOTFOUND, "gemini model not found")
		case apiErr.Status == "FAILED_PRECONDITION":
			return noveltrans.WrapErrorf(err, noveltrans.EBLOCKED, "gemini not available in this location")
		case apiErr.Code == 400:
			return noveltrans.WrapErrorf(err, noveltrans.EINVALID, "malformed gemini request")
		case apiErr.Code >= 502 && apiErr.Code <= 504:
			return noveltrans.WrapErrorf(err, noveltrans.EUNAVAILABLE, "gemini unavailable")
		case apiErr.Code == 500:
			return noveltrans.WrapErrorf(err, noveltrans.EINTERNAL, "gemini internal error")
		}
		return noveltrans.WrapErrorf(err, noveltrans.EINTERNAL, "unexpected gemini error")
	}

	return noveltrans.WrapErrorf(err, noveltrans.EUNAVAILABLE, "gemini transport failure")
}
