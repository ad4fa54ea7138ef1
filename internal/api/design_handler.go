package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"designhub/internal/schema"
)

var errInvalidID = errors.New("invalid id")

// DesignHandler 负责设计目录与评价的查询接口。
type DesignHandler struct {
	catalog Catalog
}

// NewDesignHandler 构造 DesignHandler。
func NewDesignHandler(catalog Catalog) *DesignHandler {
	return &DesignHandler{catalog: catalog}
}

// designListQuery 对应 GET /api/designs 的查询参数。
// sort 被接受但不参与查询，结果固定按主键升序。
type designListQuery struct {
	Category  string `form:"category"`
	Sort      string `form:"sort"`
	CreatorID string `form:"creatorId"`
	Search    string `form:"search"`
}

// ListDesigns 按分类、创建者与标题关键字过滤设计列表。
func (h *DesignHandler) ListDesigns(c *gin.Context) {
	var query designListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		Invalid(c, err)
		return
	}

	filters := schema.DesignFilters{
		Category: query.Category,
		Search:   query.Search,
	}
	if raw := strings.TrimSpace(query.CreatorID); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			c.JSON(http.StatusBadRequest, schema.FieldError{Field: "creatorId", Message: "creatorId must be an integer"})
			return
		}
		filters.CreatorID = uint(id)
	}

	designs, err := h.catalog.GetDesigns(c.Request.Context(), filters)
	if err != nil {
		Internal(c, "list designs", err)
		return
	}
	c.JSON(http.StatusOK, designs)
}

// GetDesign 返回设计及其创建者与用户信息。
func (h *DesignHandler) GetDesign(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid design id")
		return
	}

	design, err := h.catalog.GetDesign(c.Request.Context(), id)
	if err != nil {
		Internal(c, "get design", err)
		return
	}
	if design == nil {
		NotFound(c, "Design not found")
		return
	}
	c.JSON(http.StatusOK, design)
}

// ListReviews 返回设计的评价（可能为空数组）。
func (h *DesignHandler) ListReviews(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid design id")
		return
	}

	reviews, err := h.catalog.GetReviewsByDesign(c.Request.Context(), id)
	if err != nil {
		Internal(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(id), nil
}
