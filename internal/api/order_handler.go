package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"designhub/internal/api/middleware"
	"designhub/internal/database"
	"designhub/internal/schema"
	"designhub/internal/store"
	"designhub/internal/tasks"
)

// OrderHandler 处理下单与订单列表。
type OrderHandler struct {
	catalog Catalog
	tasks   TaskEnqueuer
}

// NewOrderHandler 构造 OrderHandler；tasks 为 nil 时不投递订单计数任务。
func NewOrderHandler(catalog Catalog, tasks TaskEnqueuer) *OrderHandler {
	return &OrderHandler{catalog: catalog, tasks: tasks}
}

// CreateOrder 校验请求体并创建订单，状态由系统置为 pending。
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req schema.InsertOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		Invalid(c, err)
		return
	}

	order, err := h.catalog.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrMissingReference) {
			BadRequest(c, "Design or user does not exist")
			return
		}
		Internal(c, "create order", err)
		return
	}

	h.enqueueOrderPlaced(c, order)
	c.JSON(http.StatusCreated, order)
}

// ListOrders 没有真实会话，无法确定当前用户，始终返回空数组。
func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, []database.Order{})
}

// enqueueOrderPlaced 投递失败只记录日志，订单本身已经写入。
func (h *OrderHandler) enqueueOrderPlaced(c *gin.Context, order *database.Order) {
	if h.tasks == nil {
		return
	}
	logger := middleware.LoggerFromContext(c).With(slog.Uint64("order_id", uint64(order.ID)))

	task, err := tasks.NewOrderPlacedTask(order.ID, order.DesignID, middleware.GetCorrelationID(c))
	if err != nil {
		logger.Error("build order placed task failed", slog.Any("error", err))
		return
	}
	if _, err := h.tasks.EnqueueContext(c.Request.Context(), task, asynq.MaxRetry(5)); err != nil {
		logger.Error("enqueue order placed task failed", slog.Any("error", err))
	}
}
