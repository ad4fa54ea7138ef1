package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticFallback 处理未匹配的路由：/api 下返回 JSON 404；
// 配置了前端目录时优先返回静态文件，否则回退到 index.html 交给前端路由。
func StaticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") || dir == "" {
			NotFound(c, "Not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			NotFound(c, "Not found")
			return
		}

		clean := path.Clean("/" + reqPath)
		candidate := filepath.Join(dir, filepath.FromSlash(clean))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			NotFound(c, "Not found")
			return
		}
		c.File(index)
	}
}
