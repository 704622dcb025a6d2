package ai

import (
	"context"
	"strings"
)

// ChatWithAI forwards the whole history behind the coach persona and returns
// a single reply.
func (coach *Coach) ChatWithAI(ctx context.Context, history []Message) string {
	messages, err := coach.prompts.Chat.Messages(nil)
	if err != nil {
		coach.logFallback("chat", err)
		return FallbackChatReply
	}
	for _, message := range history {
		if message.Role != RoleUser && message.Role != RoleAssistant {
			continue
		}
		messages = append(messages, message)
	}

	content, err := coach.complete(ctx, "chat", coach.prompts.Chat, messages)
	if err != nil {
		coach.logFallback("chat", err)
		return FallbackChatReply
	}

	reply := strings.TrimSpace(content)
	if reply == "" {
		coach.logFallback("chat", ErrEmptyCompletion)
		return FallbackChatReply
	}
	return reply
}
