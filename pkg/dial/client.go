// Package dial wraps the EPAM DIAL gateway behind the official OpenAI SDK.
// DIAL speaks the Azure OpenAI dialect, so the client is constructed with the
// Azure endpoint options. The wrapper adds no retries, pooling, or batching of
// its own; request behavior is whatever the SDK provides.
package dial

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"

	openaimodel "github.com/hupe1980/agentmesh/model/openai"

	"deepagents_demo/internal/config"
)

// Client is a thin handle on the DIAL chat completions API.
type Client struct {
	api openai.Client
	cfg config.Config
}

// New constructs a gateway client from the loaded configuration.
func New(cfg config.Config, opts ...option.RequestOption) (*Client, error) {
	if cfg.DIALAPIKey == "" {
		return nil, errors.New("dial: API key is empty")
	}
	if cfg.Endpoint() == "" {
		return nil, errors.New("dial: endpoint is empty")
	}

	requestOpts := append([]option.RequestOption{
		azure.WithEndpoint(cfg.Endpoint(), cfg.APIVersion()),
		azure.WithAPIKey(cfg.DIALAPIKey),
		option.WithRequestTimeout(cfg.Timeout),
	}, opts...)

	return &Client{api: openai.NewClient(requestOpts...), cfg: cfg}, nil
}

// ModelName returns the configured deployment name.
func (c *Client) ModelName() string { return c.cfg.ModelName }

// Model returns the agent library's model adapter backed by this client, so
// agents drive the same gateway connection as direct Generate calls.
func (c *Client) Model() *openaimodel.Model {
	return openaimodel.NewModelFromClient(&c.api, func(o *openaimodel.Options) {
		o.Model = c.cfg.ModelName
		o.Temperature = c.cfg.Temperature
		o.MaxCompletionTokens = int64(c.cfg.MaxTokens)
	})
}

// GenerateOptions tune a single Generate call.
type GenerateOptions struct {
	// Temperature overrides the configured default when non-nil.
	Temperature *float64
}

// WithTemperature overrides the sampling temperature for one call.
func WithTemperature(t float64) func(*GenerateOptions) {
	return func(o *GenerateOptions) { o.Temperature = &t }
}

// Generate performs one synchronous chat completion against the gateway.
func (c *Client) Generate(ctx context.Context, messages []Message, optFns ...func(*GenerateOptions)) (Response, error) {
	if len(messages) == 0 {
		return Response{}, errors.New("dial: no messages to send")
	}

	opts := GenerateOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	temperature := c.cfg.Temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	params := openai.ChatCompletionNewParams{
		Model:       c.cfg.ModelName,
		Messages:    buildMessages(messages),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return Response{}, errors.Wrap(err, "dial: chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("dial: no choices returned")
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
		Model:   c.cfg.ModelName,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// buildMessages converts wrapper messages into SDK message unions. Unknown
// roles are sent as user turns.
func buildMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
