package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	"go.uber.org/zap"
)

const orderSeqTTL = 48 * time.Hour

// nextOrderNumber returns ORD-YYYYMMDD-NNNNNN from the daily Redis sequence,
// or ORD-YYYYMMDD-<8 hex> when Redis cannot be reached or sequenced is false.
func (s *orderAppImpl) nextOrderNumber(ctx context.Context, sequenced bool) string {
	day := s.now().UTC().Format("20060102")

	if sequenced && s.redisRepo != nil {
		seq, err := s.redisRepo.IncrWithTTL(ctx, "order_seq:"+day, orderSeqTTL)
		if err == nil {
			return fmt.Sprintf("ORD-%s-%06d", day, seq)
		}
		logger.Warn("[ReserveOrder] order sequence unavailable", zap.String("error", err.Error()))
	}

	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", day, suffix)
}
