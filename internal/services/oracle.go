package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"oracle-backend/internal/conversation"
	"oracle-backend/internal/models"
)

// Generator produces the model's reply to the final user turn of a conversation.
type Generator interface {
	Reply(ctx context.Context, turns []models.ChatMessage) (string, error)
}

// OracleService answers one prompt at a time in the detective persona.
// It holds no per-request state.
type OracleService struct {
	generator Generator
	seed      []models.ChatMessage
	timeout   time.Duration
	logger    *zap.Logger
}

func NewOracleService(generator Generator, seed []models.ChatMessage, timeout time.Duration, logger *zap.Logger) *OracleService {
	return &OracleService{
		generator: generator,
		seed:      append([]models.ChatMessage(nil), seed...),
		timeout:   timeout,
		logger:    logger,
	}
}

// HandlePrompt returns the model's reply, an *InvalidInputError for a blank prompt,
// or an *UpstreamError when the provider call fails. It makes exactly one attempt.
func (s *OracleService) HandlePrompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &InvalidInputError{Message: MsgPromptRequired}
	}

	// A client hanging up does not abort the provider call.
	callCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.generator.Reply(callCtx, conversation.Build(s.seed, prompt))
	if err != nil {
		s.logger.Error("upstream generation failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return "", &UpstreamError{Err: err}
	}

	s.logger.Debug("upstream generation complete",
		zap.Int("prompt_len", len(prompt)),
		zap.Int("reply_len", len(reply)),
		zap.Duration("duration", time.Since(start)),
	)
	return reply, nil
}
