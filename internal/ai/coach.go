package ai

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Coach turns domain requests into prompts and normalizes the replies. Every
// operation returns either a parsed result or its fixed fallback; remote
// errors never reach the caller.
type Coach struct {
	client  Completer
	prompts *PromptCatalog
	logger  *zap.Logger
	now     func() time.Time
}

// NewCoach accepts a nil client, in which case every call is served from the
// fallbacks.
func NewCoach(client Completer, logger *zap.Logger) (*Coach, error) {
	prompts, err := LoadPromptCatalog()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coach{
		client:  client,
		prompts: prompts,
		logger:  logger.Named("coach"),
		now:     time.Now,
	}, nil
}

func (coach *Coach) Enabled() bool {
	return coach != nil && coach.client != nil
}

func (coach *Coach) complete(ctx context.Context, operation string, prompt PromptTemplate, messages []Message) (string, error) {
	if coach.client == nil {
		return "", ErrAPIKeyMissing
	}

	started := coach.now()
	content, err := coach.client.Complete(ctx, prompt.Request(messages))
	if err != nil {
		return "", fmt.Errorf("%s: %w", operation, err)
	}
	coach.logger.Debug("completion received",
		zap.String("operation", operation),
		zap.Duration("elapsed", coach.now().Sub(started)),
		zap.Int("length", len(content)),
	)
	return content, nil
}

func (coach *Coach) logFallback(operation string, err error) {
	level := coach.logger.Warn
	if coach.client == nil {
		level = coach.logger.Debug
	}
	level("serving fallback", zap.String("operation", operation), zap.Error(err))
}
