package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeOrderPlaced = "order:placed"
)

// OrderPlacedPayload 描述更新订单计数所需的最小信息。
type OrderPlacedPayload struct {
	OrderID       uint   `json:"order_id"`
	DesignID      uint   `json:"design_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewOrderPlacedTask 构造一个订单计数任务。
func NewOrderPlacedTask(orderID, designID uint, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderPlacedPayload{
		OrderID:       orderID,
		DesignID:      designID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOrderPlaced, payload), nil
}
