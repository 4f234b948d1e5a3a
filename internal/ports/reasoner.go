package ports

import "context"

type Tool struct {
	Name        string
	Description string
	// InputDescription documents the single string argument; empty means the tool takes none.
	InputDescription string
	Invoke           func(ctx context.Context, input string) (string, error)
}

type ReasoningRequest struct {
	System string
	Prompt string
	Tools  []Tool
}

type Reasoner interface {
	Run(ctx context.Context, req ReasoningRequest) (string, error)
}
