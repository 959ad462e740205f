package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/anny12sstr/converter-analyses/internal/common"
	"github.com/anny12sstr/converter-analyses/internal/core"
)

type GeminiCompleter struct {
	client    *genai.Client
	modelName string
}

func NewGeminiCompleter(ctx context.Context, apiKey, modelName string) (*GeminiCompleter, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &GeminiCompleter{client: cl, modelName: modelName}, nil
}

func (g *GeminiCompleter) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Complete sends the prompt plus extracted content in a single request.
// Text content rides along as a second text part; images ride along as an
// inline blob, decoded back to raw bytes because the SDK re-encodes on the
// wire itself.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string, content *core.Content) (string, error) {
	m := g.client.GenerativeModel(g.modelName)

	parts := []genai.Part{genai.Text(prompt)}
	if content.IsInline() {
		raw, err := base64.StdEncoding.DecodeString(content.Inline)
		if err != nil {
			return "", common.Wrap(common.KindUpstreamFailure, "inline payload is not valid base64", err)
		}
		parts = append(parts, genai.Blob{MIMEType: content.MediaType, Data: raw})
	} else {
		parts = append(parts, genai.Text(content.Text))
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return "", common.Newf(common.KindUpstreamFailure, "completion endpoint returned %d: %s", gerr.Code, gerr.Message)
		}
		return "", common.Wrap(common.KindUpstreamFailure, "completion request failed", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", common.New(common.KindUpstreamFailure, "completion endpoint returned no candidates")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

var _ core.Completer = (*GeminiCompleter)(nil)
