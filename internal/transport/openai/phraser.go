package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/domain"
	"github.com/kailas-cloud/wainnrooh/internal/domain/intent"
	"github.com/kailas-cloud/wainnrooh/internal/metrics"
)

// maxPromptPlaces caps how many results are described to the model.
const maxPromptPlaces = 5

const systemPrompt = "أنت مساعد يقترح أماكن في الرياض. " +
	"أعد صياغة الرد بلهجة سعودية ودودة في جملة أو جملتين. " +
	"لا تذكر أماكن غير موجودة في القائمة ولا تغير التقييمات."

// Phraser rewrites rule-based assistant replies through an OpenAI-compatible chat API.
type Phraser struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// Config holds the chat provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
	Logger      *zap.Logger
}

// NewPhraser creates an OpenAI-compatible reply phraser.
func NewPhraser(cfg *Config) *Phraser {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Phraser{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

// Phrase returns the model's wording of reply. Errors wrap domain.ErrAssistantUnavailable.
func (p *Phraser) Phrase(ctx context.Context, query string, reply intent.Reply) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		MaxTokens:   200,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(query, reply)},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		metrics.AssistantRequestsTotal.WithLabelValues(p.model, "error").Inc()
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		metrics.AssistantRequestsTotal.WithLabelValues(p.model, "error").Inc()
		return "", fmt.Errorf("empty chat response: %w", domain.ErrAssistantUnavailable)
	}

	metrics.AssistantRequestsTotal.WithLabelValues(p.model, "success").Inc()
	p.logger.Debug("reply phrased",
		zap.String("model", p.model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func userPrompt(query string, reply intent.Reply) string {
	var b strings.Builder
	fmt.Fprintf(&b, "سؤال المستخدم: %s\n", query)
	fmt.Fprintf(&b, "الرد الحالي: %s\n", reply.Message)
	b.WriteString("الأماكن:\n")
	for i, pl := range reply.Places {
		if i == maxPromptPlaces {
			break
		}
		fmt.Fprintf(&b, "- %s (%.1f⭐، %d مراجعة)", pl.NameAr, pl.Rating, pl.ReviewCount)
		if pl.Neighborhood != "" {
			fmt.Fprintf(&b, " في %s", pl.Neighborhood)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrAssistantUnavailable.
func parseAPIError(err error) error {
	wrap := domain.ErrAssistantUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("chat API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("chat API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("chat API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("chat request failed: %v: %w", err, wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
