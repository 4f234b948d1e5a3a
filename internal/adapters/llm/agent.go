// Package llm runs reasoning and embedding calls against an OpenAI-compatible API.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/bnema/course-tutor/internal/ports"
)

const (
	DefaultChatModel     = "gpt-4.1-mini"
	DefaultTemperature   = float32(0.7)
	DefaultMaxIterations = 3

	toolInputField = "input"
)

// NewClient builds an API client; an empty baseURL keeps the public endpoint.
func NewClient(apiKey string, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(cfg)
}

type AgentOptions struct {
	Model         string
	Temperature   float32
	MaxIterations int
}

// Agent is a tool-calling reasoner. Each iteration is one chat completion;
// once the budget is spent a last completion is forced to answer without tools.
type Agent struct {
	client  *openai.Client
	options AgentOptions
	logger  *slog.Logger
}

var _ ports.Reasoner = (*Agent)(nil)

func NewAgent(client *openai.Client, options AgentOptions, logger *slog.Logger) *Agent {
	if options.Model == "" {
		options.Model = DefaultChatModel
	}
	if options.MaxIterations <= 0 {
		options.MaxIterations = DefaultMaxIterations
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{client: client, options: options, logger: logger}
}

func (a *Agent) Run(ctx context.Context, req ports.ReasoningRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	tools := toolDefinitions(req.Tools)
	registry := make(map[string]ports.Tool, len(req.Tools))
	for _, tool := range req.Tools {
		registry[tool.Name] = tool
	}

	for iteration := 1; iteration <= a.options.MaxIterations; iteration++ {
		message, err := a.complete(ctx, messages, tools, "")
		if err != nil {
			return "", err
		}
		if len(message.ToolCalls) == 0 {
			return message.Content, nil
		}

		messages = append(messages, message)
		for _, call := range message.ToolCalls {
			observation := a.invoke(ctx, registry, call)
			a.logger.Debug("tool invoked",
				slog.Int("iteration", iteration),
				slog.String("tool", call.Function.Name),
				slog.Int("observation_chars", len(observation)),
			)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    observation,
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}

	a.logger.Debug("iteration budget spent, forcing final answer", slog.Int("max_iterations", a.options.MaxIterations))
	message, err := a.complete(ctx, messages, tools, "none")
	if err != nil {
		return "", err
	}
	return message.Content, nil
}

func (a *Agent) complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool, toolChoice string) (openai.ChatCompletionMessage, error) {
	request := openai.ChatCompletionRequest{
		Model:       a.options.Model,
		Messages:    messages,
		Temperature: a.options.Temperature,
	}
	if len(tools) > 0 {
		request.Tools = tools
		if toolChoice != "" {
			request.ToolChoice = toolChoice
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message, nil
}

// invoke turns every failure into an observation so the model can correct
// itself on the next iteration.
func (a *Agent) invoke(ctx context.Context, registry map[string]ports.Tool, call openai.ToolCall) string {
	tool, ok := registry[call.Function.Name]
	if !ok {
		return fmt.Sprintf("Ferramenta desconhecida: %s", call.Function.Name)
	}

	input, err := toolInput(call.Function.Arguments)
	if err != nil {
		return fmt.Sprintf("Argumentos inválidos para %s: %v. Envie um objeto JSON com o campo %q.", tool.Name, err, toolInputField)
	}

	output, err := tool.Invoke(ctx, input)
	if err != nil {
		return fmt.Sprintf("Erro ao executar %s: %v", tool.Name, err)
	}
	return output
}

func toolInput(arguments string) (string, error) {
	arguments = strings.TrimSpace(arguments)
	if arguments == "" {
		return "", nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", err
	}
	value, ok := args[toolInputField]
	if !ok || value == nil {
		return "", nil
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string", toolInputField)
	}
	return text, nil
}

func toolDefinitions(tools []ports.Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}

	definitions := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		params := jsonschema.Definition{
			Type:       jsonschema.Object,
			Properties: map[string]jsonschema.Definition{},
		}
		if tool.InputDescription != "" {
			params.Properties[toolInputField] = jsonschema.Definition{
				Type:        jsonschema.String,
				Description: tool.InputDescription,
			}
			params.Required = []string{toolInputField}
		}

		definitions = append(definitions, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  params,
			},
		})
	}
	return definitions
}
