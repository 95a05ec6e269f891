package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"oracle-backend/internal/conversation"
	"oracle-backend/internal/models"
)

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *zap.Logger
}

// NewGeminiService authenticates with apiKey; extra opts (endpoint, HTTP client) are applied after it.
func NewGeminiService(ctx context.Context, apiKey, modelName, systemInstruction string, logger *zap.Logger, opts ...option.ClientOption) (*GeminiService, error) {
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	if systemInstruction != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	}

	return &GeminiService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Reply starts a fresh chat seeded with every turn but the last and sends the last one.
// The model handle is only read here, so concurrent calls are safe.
func (s *GeminiService) Reply(ctx context.Context, turns []models.ChatMessage) (string, error) {
	history, last, ok := conversation.Split(turns)
	if !ok {
		return "", errors.New("conversation must end with a user turn")
	}

	cs := s.model.StartChat()
	cs.History = toContents(history)

	resp, err := cs.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", err
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			s.logger.Warn("gemini candidate did not stop normally",
				zap.Int("candidate", i),
				zap.String("finish_reason", cand.FinishReason.String()),
			)
		}
	}

	text := extractText(resp)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func toContents(turns []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := models.RoleUser
		if strings.EqualFold(t.Role, models.RoleModel) {
			role = models.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
