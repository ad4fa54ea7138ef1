package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatorHandler 负责创建者档案的查询接口。
type CreatorHandler struct {
	catalog Catalog
}

func NewCreatorHandler(catalog Catalog) *CreatorHandler {
	return &CreatorHandler{catalog: catalog}
}

// ListCreators 返回全部创建者及其用户信息。
func (h *CreatorHandler) ListCreators(c *gin.Context) {
	creators, err := h.catalog.GetCreators(c.Request.Context())
	if err != nil {
		Internal(c, "list creators", err)
		return
	}
	c.JSON(http.StatusOK, creators)
}

// GetCreator 返回单个创建者。
func (h *CreatorHandler) GetCreator(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid creator id")
		return
	}

	creator, err := h.catalog.GetCreator(c.Request.Context(), id)
	if err != nil {
		Internal(c, "get creator", err)
		return
	}
	if creator == nil {
		NotFound(c, "Creator not found")
		return
	}
	c.JSON(http.StatusOK, creator)
}
