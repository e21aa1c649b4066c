package coach

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const defaultTimeout = 60 * time.Second

type LLMClientParams struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// LLMClient calls an OpenAI compatible chat completions endpoint, once per plan.
type LLMClient struct {
	client  openaigo.Client
	model   string
	timeout time.Duration
	hasKey  bool
}

var _ Generator = (*LLMClient)(nil)

func NewLLMClient(params LLMClientParams) *LLMClient {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	apiKey := strings.TrimSpace(params.APIKey)
	client := openaigo.NewClient(
		option.WithBaseURL(params.BaseURL),
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)

	return &LLMClient{
		client:  client,
		model:   params.Model,
		timeout: timeout,
		hasKey:  apiKey != "",
	}
}

func (c *LLMClient) Generate(ctx context.Context, goal, metrics string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.llm.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("llm.model", c.model))

	if !c.hasKey {
		return "", ErrMissingCredential
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.UserMessage(BuildPrompt(goal, metrics)),
		},
	})
	if err != nil {
		return "", classifyError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	span.SetAttributes(
		attribute.Int64("llm.usage.prompt_tokens", resp.Usage.PromptTokens),
		attribute.Int64("llm.usage.completion_tokens", resp.Usage.CompletionTokens),
	)
	log.Debugf("llm plan generated: %d chars, model %s", len(text), c.model)

	return text, nil
}

func classifyError(ctx context.Context, err error) error {
	var apiErr *openaigo.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: status %d: %w", ErrUpstream, apiErr.StatusCode, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}
