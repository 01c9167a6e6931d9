// Package llm is the boundary to the external completion and
// moderation collaborators. It does not implement any inference; it
// shapes requests, runs the tool-call loop, and interprets results.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"go.uber.org/zap"

	"github.com/netcoach-ai/netcoach/internal/config"
	"github.com/netcoach-ai/netcoach/internal/domain"
	"github.com/netcoach-ai/netcoach/internal/tools"
)

const systemPrompt = "You are an AI Security Coach.\n" +
	"- Be concise. Use bullet points and short sentences.\n" +
	"- Prefer concrete commands and config snippets.\n" +
	"- Ask for OS, error text, and network layout only if needed.\n" +
	"- No harmful guidance. Refuse offensive or illegal requests.\n" +
	"- Use metric units.\n" +
	"Troubleshoot flow:\n" +
	"1) Summarize the problem in 1-2 lines.\n" +
	"2) Provide a numbered diagnostic plan.\n" +
	"3) Show example commands with expected outputs.\n" +
	"4) Offer fallback paths and a stopping point.\n"

const (
	answerTemperature = 0.3
	answerMaxTokens   = 800
	titleMaxTokens    = 20
	maxToolRounds     = 5
)

// Client talks to an OpenAI-compatible completion API. The completion
// credential is supplied per call by the end user; only the moderation
// key (if any) is a server-side setting.
type Client struct {
	baseURL         string
	model           string
	titleModel      string
	moderationKey   string
	moderationModel string
	registry        *tools.Registry
	logger          *zap.Logger
}

// New creates a completion client
func New(cfg *config.Config, registry *tools.Registry, logger *zap.Logger) *Client {
	return &Client{
		baseURL:         cfg.LLM.BaseURL,
		model:           cfg.LLM.Model,
		titleModel:      cfg.LLM.TitleModel,
		moderationKey:   cfg.Moderation.APIKey,
		moderationModel: cfg.Moderation.Model,
		registry:        registry,
		logger:          logger,
	}
}

func (c *Client) apiClient(credential string) openai.Client {
	opts := []option.RequestOption{option.WithAPIKey(credential)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	return openai.NewClient(opts...)
}

// Answer generates a reply to message given the prior turns of the
// session. Tool calls requested by the model are executed through the
// registry and fed back, for at most maxToolRounds rounds; each
// executed call is recorded as a step description.
func (c *Client) Answer(ctx context.Context, credential string, history []*domain.Message, message string) (domain.Answer, error) {
	client := c.apiClient(credential)

	msgs := []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(systemPrompt)}
	for _, m := range history {
		switch m.Role {
		case domain.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(message))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(answerTemperature),
		MaxTokens:   openai.Int(answerMaxTokens),
	}
	if toolParams := c.toolParams(); len(toolParams) > 0 {
		params.Tools = toolParams
	}

	var steps []string
	for round := 0; round < maxToolRounds; round++ {
		resp, err := client.Chat.Completions.New(ctx, params)
		if err != nil {
			return domain.Answer{}, fmt.Errorf("completion request: %w", err)
		}
		if len(resp.Choices) == 0 {
			return domain.Answer{}, fmt.Errorf("completion returned no choices")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return domain.Answer{Text: msg.Content, Steps: steps}, nil
		}

		params.Messages = append(params.Messages, msg.ToParam())
		for _, tc := range msg.ToolCalls {
			result := c.runTool(ctx, tc.Function.Name, tc.Function.Arguments)
			steps = append(steps, fmt.Sprintf("%s(%s)", tc.Function.Name, tc.Function.Arguments))
			params.Messages = append(params.Messages, openai.ToolMessage(result, tc.ID))
		}
	}

	return domain.Answer{}, fmt.Errorf("tool loop did not settle after %d rounds", maxToolRounds)
}

func (c *Client) runTool(ctx context.Context, name, args string) string {
	tool, ok := c.registry.Get(name)
	if !ok {
		return fmt.Sprintf("error: unknown tool %q", name)
	}
	if args == "" {
		args = "{}"
	}

	out, err := tool.Execute(ctx, json.RawMessage(args))
	if err != nil {
		c.logger.Warn("tool execution failed",
			zap.String("tool", name),
			zap.Error(err))
		return "error: " + err.Error()
	}
	return out
}

func (c *Client) toolParams() []openai.ChatCompletionToolParam {
	var result []openai.ChatCompletionToolParam
	if c.registry == nil {
		return result
	}
	for _, t := range c.registry.All() {
		result = append(result, openai.ChatCompletionToolParam{
			Type: "function",
			Function: shared.FunctionDefinitionParam{
				Name:        t.Name(),
				Description: openai.String(t.Description()),
				Parameters: shared.FunctionParameters{
					"type":       "object",
					"properties": t.Parameters(),
				},
			},
		})
	}
	return result
}

// GenerateTitle asks the completion API for a 3-6 word session title
// summarizing the user's first message.
func (c *Client) GenerateTitle(ctx context.Context, credential, message string) (string, error) {
	client := c.apiClient(credential)

	prompt := fmt.Sprintf("Summarize this question into 3-6 words for a chat title:\n\n%s", message)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.titleModel),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Temperature: openai.Float(answerTemperature),
		MaxTokens:   openai.Int(titleMaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("title request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("title completion returned no choices")
	}

	return trimTitle(resp.Choices[0].Message.Content), nil
}

// trimTitle strips whitespace and surrounding quotes from a generated
// title.
func trimTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}

// Moderate classifies text with the moderation collaborator using the
// server-side key. Without a configured key, or when the moderation
// API fails, the decision is Indeterminate and callers fail open;
// that is a deliberate policy for local use, not an accident.
func (c *Client) Moderate(ctx context.Context, text string) domain.ModerationDecision {
	if c.moderationKey == "" {
		return domain.ModerationIndeterminate
	}

	client := openai.NewClient(option.WithAPIKey(c.moderationKey))
	resp, err := client.Moderations.New(ctx, openai.ModerationNewParams{
		Model: openai.ModerationModel(c.moderationModel),
		Input: openai.ModerationNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		c.logger.Warn("moderation request failed, failing open", zap.Error(err))
		return domain.ModerationIndeterminate
	}
	if len(resp.Results) == 0 {
		return domain.ModerationIndeterminate
	}

	if resp.Results[0].Flagged {
		return domain.ModerationBlocked
	}
	return domain.ModerationAllowed
}
