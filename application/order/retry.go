package order

import (
	"context"

	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/muhammadheryan/pickup-inventory/utils/errors"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	"go.uber.org/zap"
)

// withRetry re-runs the whole operation in a fresh transaction after a lock conflict.
// Partial retries are never attempted.
func (s *orderAppImpl) withRetry(ctx context.Context, method string, op func() error) error {
	retries := 0
	if s.config != nil {
		retries = s.config.Order.ConflictRetries
	}

	var err error
	for attempt := 0; ; attempt++ {
		err = op()
		if err == nil || !errors.Is(err, constant.ErrConflict) || attempt >= retries {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		logger.Warn("["+method+"] retrying after conflict", zap.Int("attempt", attempt+1), zap.String("error", err.Error()))
	}
}
