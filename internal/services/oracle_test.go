package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"oracle-backend/internal/conversation"
	"oracle-backend/internal/models"
)

type stubGenerator struct {
	reply string
	err   error

	calls    int
	lastTurn []models.ChatMessage
	lastCtx  context.Context
}

func (s *stubGenerator) Reply(ctx context.Context, turns []models.ChatMessage) (string, error) {
	s.calls++
	s.lastTurn = turns
	s.lastCtx = ctx
	return s.reply, s.err
}

func newTestOracle(gen Generator, timeout time.Duration) *OracleService {
	return NewOracleService(gen, conversation.Seed(), timeout, zap.NewNop())
}

func TestHandlePrompt_BlankPromptIsInvalid(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t "} {
		gen := &stubGenerator{reply: "unused"}
		_, err := newTestOracle(gen, 0).HandlePrompt(context.Background(), prompt)

		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("prompt %q: expected InvalidInputError, got %v", prompt, err)
		}
		if invalid.Message != "Prompt is required" {
			t.Fatalf("prompt %q: unexpected message %q", prompt, invalid.Message)
		}
		if gen.calls != 0 {
			t.Fatalf("prompt %q: expected no upstream call, got %d", prompt, gen.calls)
		}
	}
}

func TestHandlePrompt_Success(t *testing.T) {
	gen := &stubGenerator{reply: "Greetings, detective."}

	reply, err := newTestOracle(gen, 0).HandlePrompt(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Greetings, detective." {
		t.Fatalf("expected stub reply, got %q", reply)
	}
	if gen.calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", gen.calls)
	}

	if len(gen.lastTurn) != 3 {
		t.Fatalf("expected seed plus one user turn, got %d turns", len(gen.lastTurn))
	}
	if gen.lastTurn[0].Text != conversation.SystemInstruction || gen.lastTurn[1].Text != conversation.IntroReply {
		t.Fatalf("expected conversation to open with the seed")
	}
	if gen.lastTurn[2] != (models.ChatMessage{Role: models.RoleUser, Text: "Hello"}) {
		t.Fatalf("unexpected user turn: %+v", gen.lastTurn[2])
	}
}

func TestHandlePrompt_ForwardsPromptUntrimmed(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}

	if _, err := newTestOracle(gen, 0).HandlePrompt(context.Background(), "  Hello  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gen.lastTurn[2].Text; got != "  Hello  " {
		t.Fatalf("expected prompt forwarded as sent, got %q", got)
	}
}

func TestHandlePrompt_UpstreamFailure(t *testing.T) {
	cause := errors.New("quota exceeded")
	gen := &stubGenerator{err: cause}

	_, err := newTestOracle(gen, 0).HandlePrompt(context.Background(), "Hello")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Error() != "quota exceeded" {
		t.Fatalf("expected cause text passed through, got %q", upstream.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected UpstreamError to unwrap to its cause")
	}
	if gen.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", gen.calls)
	}
}

func TestHandlePrompt_UpstreamErrorNeverEmpty(t *testing.T) {
	gen := &stubGenerator{err: errors.New("")}

	_, err := newTestOracle(gen, 0).HandlePrompt(context.Background(), "Hello")
	if err == nil || err.Error() == "" {
		t.Fatalf("expected non-empty error text, got %v", err)
	}
}

func TestHandlePrompt_DetachedFromCallerCancellation(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestOracle(gen, 0).HandlePrompt(ctx, "Hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastCtx.Err() != nil {
		t.Fatalf("expected upstream context to ignore caller cancellation")
	}
}

func TestHandlePrompt_AppliesTimeout(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}

	if _, err := newTestOracle(gen, time.Minute).HandlePrompt(context.Background(), "Hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.lastCtx.Deadline(); !ok {
		t.Fatalf("expected upstream context to carry a deadline")
	}
}

func TestNewOracleService_CopiesSeed(t *testing.T) {
	seed := conversation.Seed()
	gen := &stubGenerator{reply: "ok"}
	svc := NewOracleService(gen, seed, 0, zap.NewNop())

	seed[0].Text = "tampered"
	if _, err := svc.HandlePrompt(context.Background(), "Hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastTurn[0].Text != conversation.SystemInstruction {
		t.Fatalf("expected service to keep its own copy of the seed")
	}
}
