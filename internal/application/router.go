package application

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

const maxGreetingWords = 5

var greetingPrefixes = []string{
	"olá", "ola", "oi", "bom dia", "boa tarde", "boa noite",
	"e aí", "e ai", "eae", "ooi", "ei", "iae",
}

var summarizeIntent = regexp.MustCompile(`(?i)(resuma|defina|o que)`)

// ClassifyQuestion decides how a question is answered. Greetings are short
// questions opening with a known salutation; summarize intent is a plain
// keyword match on the raw question.
func ClassifyQuestion(question string) domain.RouterDecision {
	cleaned := strings.ToLower(strings.TrimSpace(question))
	if len(strings.Fields(cleaned)) <= maxGreetingWords {
		for _, prefix := range greetingPrefixes {
			if strings.HasPrefix(cleaned, prefix) {
				return domain.DecisionGreeting
			}
		}
	}

	if summarizeIntent.MatchString(question) {
		return domain.DecisionSummarizeRewrite
	}
	return domain.DecisionDirect
}

type Router struct {
	tutor    ports.Reasoner
	rewriter ports.Reasoner
	tools    []ports.Tool
	metrics  ports.Metrics
	logger   *slog.Logger
}

func NewRouter(tutor ports.Reasoner, rewriter ports.Reasoner, tools []ports.Tool, metrics ports.Metrics, logger *slog.Logger) *Router {
	if metrics == nil {
		metrics = ports.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{tutor: tutor, rewriter: rewriter, tools: tools, metrics: metrics, logger: logger}
}

// Route answers question using contextCourses as the only allowed knowledge.
// It never fails: reasoning errors and panics become DegradationReply.
func (r *Router) Route(ctx context.Context, question string, contextCourses string) (answer string) {
	decision := ClassifyQuestion(question)

	ctx, span := tracer.Start(ctx, "Router.Route")
	span.SetAttributes(attribute.String("router.decision", string(decision)))
	started := time.Now()
	r.metrics.RecordDecision(string(decision))
	defer func() {
		r.metrics.ObserveGenerate(string(decision), time.Since(started))
		span.End()
	}()

	if decision == domain.DecisionGreeting {
		return GreetingReply
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Error("router panic", slog.Any("panic", recovered), slog.String("decision", string(decision)))
			span.SetStatus(codes.Error, "panic")
			answer = DegradationReply
		}
	}()

	output, err := r.tutor.Run(ctx, ports.ReasoningRequest{
		System: tutorSystemPrompt,
		Prompt: scopedPrompt(question, contextCourses),
		Tools:  r.tools,
	})
	if err != nil {
		return r.degrade(span, "tutor", err)
	}

	if decision != domain.DecisionSummarizeRewrite {
		return output
	}

	rewritten, err := r.rewriter.Run(ctx, ports.ReasoningRequest{
		System: rewriterSystemPrompt,
		Prompt: "Resumo original do curso para reestruturação: " + output,
	})
	if err != nil {
		return r.degrade(span, "rewriter", err)
	}
	return rewritten
}

func (r *Router) degrade(span trace.Span, stage string, err error) string {
	r.logger.Error("reasoning failed", slog.String("stage", stage), slog.Any("error", err))
	span.RecordError(err)
	span.SetStatus(codes.Error, stage+" failed")
	return DegradationReply
}

func scopedPrompt(question string, contextCourses string) string {
	return fmt.Sprintf("%s\n\nCONTEXTO:\n%s\n\nPERGUNTA:\n%s", filterPolicy, contextCourses, question)
}
