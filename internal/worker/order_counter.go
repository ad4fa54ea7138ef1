package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"designhub/internal/store"
	"designhub/internal/tasks"
)

type orderCounterStore interface {
	IncrementOrderCounters(ctx context.Context, designID uint) error
}

// OrderCounterHandler 消费下单事件，累加设计与创建者的订单数。
type OrderCounterHandler struct {
	store  orderCounterStore
	logger *slog.Logger
}

// NewOrderCounterHandler 创建任务处理器。
func NewOrderCounterHandler(s orderCounterStore, logger *slog.Logger) *OrderCounterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderCounterHandler{store: s, logger: logger}
}

// ProcessTask 实现 asynq.Handler。
func (h *OrderCounterHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload tasks.OrderPlacedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("unmarshal task payload failed", slog.Any("error", err))
		return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}

	log := h.logger.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Uint64("order_id", uint64(payload.OrderID)),
		slog.Uint64("design_id", uint64(payload.DesignID)),
	)

	if err := h.store.IncrementOrderCounters(ctx, payload.DesignID); err != nil {
		if errors.Is(err, store.ErrMissingReference) {
			log.Warn("design not found, skipping task")
			return nil
		}
		log.Error("increment order counters failed", slog.Any("error", err))
		return err
	}

	log.Info("order counters updated")
	return nil
}
