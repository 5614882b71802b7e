// AI insight facade over the configurable language-model backend.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/versepath/scripture-companion/internal/host"
)

// Status reports whether the configured provider is reachable. An
// unreachable provider is Connected=false, never an error.
type Status struct {
	Connected bool   `json:"connected"`
	Provider  string `json:"provider"`
	Model     string `json:"model,omitempty"`
}

// Insight is a generated completion plus its token cost.
type Insight struct {
	Content    string `json:"content"`
	TokensUsed int    `json:"tokensUsed"`
}

// ProviderError is a connection, auth, or timeout failure from the
// language-model backend. Always retryable, never fatal to the process.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("ai provider %s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Service is the AI facade operation set.
type Service interface {
	CheckConnection(ctx context.Context) (*Status, error)
	GetInsight(ctx context.Context, verseText, reference string) (*Insight, error)
	GenerateActionSteps(ctx context.Context, verseText, reference, topic string) (*Insight, error)
	GenerateReflectionQuestions(ctx context.Context, verseText, reference string) (*Insight, error)
}

// remoteService relays each operation to the host engine, which owns the
// actual provider integration.
type remoteService struct {
	channel host.Channel
}

func NewRemoteService(channel host.Channel) Service {
	return &remoteService{channel: channel}
}

func providerErr(op string, err error) error {
	var invokeErr *host.InvokeError
	if errors.As(err, &invokeErr) && invokeErr.Code == host.CodeAIProviderError {
		return &ProviderError{Provider: "host", Op: op, Err: errors.New(invokeErr.Message)}
	}
	return &ProviderError{Provider: "host", Op: op, Err: err}
}

func (s *remoteService) CheckConnection(ctx context.Context) (*Status, error) {
	var status Status
	if err := s.channel.Invoke(ctx, "check_llm_connection", nil, &status); err != nil {
		// Report unreachable instead of failing; this call must not throw.
		return &Status{Connected: false, Provider: "unknown"}, nil
	}
	return &status, nil
}

func (s *remoteService) GetInsight(ctx context.Context, verseText, reference string) (*Insight, error) {
	args := map[string]any{"verseText": verseText, "reference": reference}
	var insight Insight
	if err := s.channel.Invoke(ctx, "get_ai_insight", args, &insight); err != nil {
		return nil, providerErr("get_ai_insight", err)
	}
	return &insight, nil
}

func (s *remoteService) GenerateActionSteps(ctx context.Context, verseText, reference, topic string) (*Insight, error) {
	args := map[string]any{"verseText": verseText, "reference": reference, "topic": topic}
	var insight Insight
	if err := s.channel.Invoke(ctx, "generate_action_steps", args, &insight); err != nil {
		return nil, providerErr("generate_action_steps", err)
	}
	return &insight, nil
}

func (s *remoteService) GenerateReflectionQuestions(ctx context.Context, verseText, reference string) (*Insight, error) {
	args := map[string]any{"verseText": verseText, "reference": reference}
	var insight Insight
	if err := s.channel.Invoke(ctx, "generate_reflection_questions", args, &insight); err != nil {
		return nil, providerErr("generate_reflection_questions", err)
	}
	return &insight, nil
}

// dispatchService re-selects live or mock on every call.
type dispatchService struct {
	live   Service
	mock   Service
	detect func() bool
}

func NewService(live, mock Service, detect func() bool) Service {
	if detect == nil {
		detect = host.Available
	}
	return &dispatchService{live: live, mock: mock, detect: detect}
}

func (s *dispatchService) backend() Service {
	if s.detect() && s.live != nil {
		return s.live
	}
	return s.mock
}

func (s *dispatchService) CheckConnection(ctx context.Context) (*Status, error) {
	return s.backend().CheckConnection(ctx)
}

func (s *dispatchService) GetInsight(ctx context.Context, verseText, reference string) (*Insight, error) {
	return s.backend().GetInsight(ctx, verseText, reference)
}

func (s *dispatchService) GenerateActionSteps(ctx context.Context, verseText, reference, topic string) (*Insight, error) {
	return s.backend().GenerateActionSteps(ctx, verseText, reference, topic)
}

func (s *dispatchService) GenerateReflectionQuestions(ctx context.Context, verseText, reference string) (*Insight, error) {
	return s.backend().GenerateReflectionQuestions(ctx, verseText, reference)
}
