// Package conversation assembles the turns sent to the model for a single prompt.
package conversation

import "oracle-backend/internal/models"

// Seed returns the two-turn exchange that opens every conversation.
// Callers get their own slice; the underlying text is constant.
func Seed() []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleUser, Text: SystemInstruction},
		{Role: models.RoleModel, Text: IntroReply},
	}
}

// Build returns seed followed by a single user turn holding prompt.
// Neither argument is modified.
func Build(seed []models.ChatMessage, prompt string) []models.ChatMessage {
	turns := make([]models.ChatMessage, 0, len(seed)+1)
	turns = append(turns, seed...)
	return append(turns, models.ChatMessage{Role: models.RoleUser, Text: prompt})
}

// Split separates the history from the final turn, which must be the user's.
func Split(turns []models.ChatMessage) (history []models.ChatMessage, last models.ChatMessage, ok bool) {
	if len(turns) == 0 {
		return nil, models.ChatMessage{}, false
	}
	last = turns[len(turns)-1]
	if last.Role != models.RoleUser {
		return nil, models.ChatMessage{}, false
	}
	return turns[:len(turns)-1], last, true
}
