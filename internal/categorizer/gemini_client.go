package categorizer

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/kakeibo/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClient implements the AIClient interface for the Google Gemini API.
// The underlying client is created lazily on first use.
type GeminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
	model     *genai.GenerativeModel
	log       logging.Logger
}

// NewGeminiClient creates a new instance of GeminiClient.
func NewGeminiClient(apiKey, modelName string, logger logging.Logger) *GeminiClient {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		log:       logger,
	}
}

func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.model != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	c.model = client.GenerativeModel(c.modelName)
	return nil
}

// SuggestCategory asks Gemini to pick one of labels for memo.
func (c *GeminiClient) SuggestCategory(ctx context.Context, memo string, labels []string) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(memo, labels)))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	label := extractCategory(text, labels)

	c.log.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "gemini_suggest"},
		logging.Field{Key: logging.FieldCategory, Value: label},
	).Debug("Gemini answered category prompt")

	return label, nil
}

// Close releases the underlying client
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func buildPrompt(memo string, labels []string) string {
	return fmt.Sprintf(`Categorize the following household expense memo:
Memo: %s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		memo, strings.Join(labels, ", "))
}

// extractCategory reads the "Category:" line of the answer and keeps it only
// when it names one of labels. Matching is case-insensitive.
func extractCategory(response string, labels []string) string {
	var answer string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			answer = strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			break
		}
	}
	if answer == "" {
		answer = strings.TrimSpace(response)
	}
	answer = strings.Trim(answer, "[]\"'.")

	for _, label := range labels {
		if strings.EqualFold(answer, label) {
			return label
		}
	}
	return ""
}
