package domain

type RouterDecision string

const (
	DecisionGreeting         RouterDecision = "greeting"
	DecisionDirect           RouterDecision = "direct"
	DecisionSummarizeRewrite RouterDecision = "summarize_rewrite"
)
