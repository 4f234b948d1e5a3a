package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/course-tutor/internal/ports"
)

// scriptedAPI answers chat completions from a fixed script and records requests.
type scriptedAPI struct {
	mu        sync.Mutex
	responses []openai.ChatCompletionMessage
	requests  []openai.ChatCompletionRequest
}

func newScriptedAPI(t *testing.T, responses ...openai.ChatCompletionMessage) (*scriptedAPI, *openai.Client) {
	t.Helper()

	api := &scriptedAPI{responses: responses}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		api.mu.Lock()
		api.requests = append(api.requests, req)
		index := len(api.requests) - 1
		api.mu.Unlock()

		if index >= len(api.responses) {
			http.Error(w, `{"error":{"message":"script exhausted"}}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Model:  req.Model,
			Choices: []openai.ChatCompletionChoice{{
				Index:        0,
				Message:      api.responses[index],
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
	t.Cleanup(server.Close)

	return api, NewClient("test-key", server.URL+"/v1")
}

func (a *scriptedAPI) recorded() []openai.ChatCompletionRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]openai.ChatCompletionRequest(nil), a.requests...)
}

func answer(content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}
}

func callTool(id string, name string, arguments string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleAssistant,
		ToolCalls: []openai.ToolCall{{
			ID:       id,
			Type:     openai.ToolTypeFunction,
			Function: openai.FunctionCall{Name: name, Arguments: arguments},
		}},
	}
}

func summarizeTool(calls *[]string) ports.Tool {
	return ports.Tool{
		Name:             "summarizeCourse",
		Description:      "Resume um curso",
		InputDescription: "Nome do curso",
		Invoke: func(_ context.Context, input string) (string, error) {
			*calls = append(*calls, input)
			return "**Resumo do Curso " + input + "**:\n\nconteúdo", nil
		},
	}
}

func TestRunReturnsDirectAnswerWithoutTools(t *testing.T) {
	t.Parallel()

	api, client := newScriptedAPI(t, answer("Olá!"))
	agent := NewAgent(client, AgentOptions{Temperature: 0.7}, nil)

	output, err := agent.Run(context.Background(), ports.ReasoningRequest{System: "sys", Prompt: "oi"})
	require.NoError(t, err)
	assert.Equal(t, "Olá!", output)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, DefaultChatModel, requests[0].Model)
	assert.InDelta(t, 0.7, requests[0].Temperature, 0.0001)
	assert.Empty(t, requests[0].Tools)
	require.Len(t, requests[0].Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, requests[0].Messages[0].Role)
	assert.Equal(t, "oi", requests[0].Messages[1].Content)
}

func TestRunInvokesToolAndFeedsObservationBack(t *testing.T) {
	t.Parallel()

	api, client := newScriptedAPI(t,
		callTool("call_1", "summarizeCourse", `{"input":"Git e GitHub"}`),
		answer("O curso ensina Git."),
	)
	var calls []string
	agent := NewAgent(client, AgentOptions{}, nil)

	output, err := agent.Run(context.Background(), ports.ReasoningRequest{
		Prompt: "resuma git",
		Tools:  []ports.Tool{summarizeTool(&calls)},
	})
	require.NoError(t, err)
	assert.Equal(t, "O curso ensina Git.", output)
	assert.Equal(t, []string{"Git e GitHub"}, calls)

	requests := api.recorded()
	require.Len(t, requests, 2)
	require.Len(t, requests[0].Tools, 1)
	assert.Equal(t, "summarizeCourse", requests[0].Tools[0].Function.Name)

	second := requests[1].Messages
	last := second[len(second)-1]
	assert.Equal(t, openai.ChatMessageRoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Content, "**Resumo do Curso Git e GitHub**")
}

func TestRunFeedsMalformedArgumentsBackAsObservation(t *testing.T) {
	t.Parallel()

	api, client := newScriptedAPI(t,
		callTool("call_1", "summarizeCourse", `{"input":`),
		callTool("call_2", "summarizeCourse", `{"input":"Python"}`),
		answer("Resumo pronto."),
	)
	var calls []string
	agent := NewAgent(client, AgentOptions{}, nil)

	output, err := agent.Run(context.Background(), ports.ReasoningRequest{
		Prompt: "resuma python",
		Tools:  []ports.Tool{summarizeTool(&calls)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Resumo pronto.", output)
	assert.Equal(t, []string{"Python"}, calls)

	requests := api.recorded()
	observation := requests[1].Messages[len(requests[1].Messages)-1]
	assert.Equal(t, "call_1", observation.ToolCallID)
	assert.Contains(t, observation.Content, "Argumentos inválidos")
}

func TestRunReportsUnknownToolsAndToolErrors(t *testing.T) {
	t.Parallel()

	api, client := newScriptedAPI(t,
		callTool("call_1", "deleteCourse", `{}`),
		callTool("call_2", "listCourses", ``),
		answer("ok"),
	)
	agent := NewAgent(client, AgentOptions{}, nil)

	_, err := agent.Run(context.Background(), ports.ReasoningRequest{
		Prompt: "liste",
		Tools: []ports.Tool{{
			Name:        "listCourses",
			Description: "Lista cursos",
			Invoke: func(context.Context, string) (string, error) {
				return "", errors.New("catalog down")
			},
		}},
	})
	require.NoError(t, err)

	requests := api.recorded()
	first := requests[1].Messages[len(requests[1].Messages)-1]
	assert.Contains(t, first.Content, "Ferramenta desconhecida: deleteCourse")
	second := requests[2].Messages[len(requests[2].Messages)-1]
	assert.Contains(t, second.Content, "catalog down")
}

func TestRunForcesFinalAnswerAfterIterationBudget(t *testing.T) {
	t.Parallel()

	api, client := newScriptedAPI(t,
		callTool("call_1", "summarizeCourse", `{"input":"a"}`),
		callTool("call_2", "summarizeCourse", `{"input":"b"}`),
		callTool("call_3", "summarizeCourse", `{"input":"c"}`),
		answer("final"),
	)
	var calls []string
	agent := NewAgent(client, AgentOptions{MaxIterations: 3}, nil)

	output, err := agent.Run(context.Background(), ports.ReasoningRequest{
		Prompt: "loop",
		Tools:  []ports.Tool{summarizeTool(&calls)},
	})
	require.NoError(t, err)
	assert.Equal(t, "final", output)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	requests := api.recorded()
	require.Len(t, requests, 4)
	assert.Equal(t, "none", requests[3].ToolChoice)
}

func TestRunWrapsAPIErrors(t *testing.T) {
	t.Parallel()

	_, client := newScriptedAPI(t)
	agent := NewAgent(client, AgentOptions{}, nil)

	_, err := agent.Run(context.Background(), ports.ReasoningRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion")
}

func TestToolInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		arguments string
		want      string
		wantErr   bool
	}{
		{name: "empty", arguments: "", want: ""},
		{name: "empty object", arguments: "{}", want: ""},
		{name: "string input", arguments: `{"input":"Git"}`, want: "Git"},
		{name: "non string input", arguments: `{"input":3}`, wantErr: true},
		{name: "broken json", arguments: `{"input"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := toolInput(tt.arguments)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
