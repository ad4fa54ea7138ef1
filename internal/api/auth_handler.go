package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"designhub/internal/api/middleware"
	"designhub/internal/auth"
	"designhub/internal/schema"
	"designhub/internal/store"
)

const (
	invalidCredentialsMessage = "Invalid credentials"
	tooManyLoginsMessage      = "Too many login attempts"
	signupValidationMessage   = "Validation error"
	signupDuplicateMessage    = "Username or email already exists"
)

// AuthHandler 提供演示级别的登录与注册，不签发会话或令牌。
type AuthHandler struct {
	catalog   Catalog
	passwords auth.Passwords
	limiter   *LoginLimiter
}

// NewAuthHandler 构造 AuthHandler；limiter 为 nil 时不限流。
func NewAuthHandler(catalog Catalog, passwords auth.Passwords, limiter *LoginLimiter) *AuthHandler {
	return &AuthHandler{catalog: catalog, passwords: passwords, limiter: limiter}
}

// Login 按邮箱查找用户并比对密码，成功时原样返回用户记录。
func (h *AuthHandler) Login(c *gin.Context) {
	var req schema.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		Unauthorized(c, invalidCredentialsMessage)
		return
	}

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), req.Email)
		if err != nil {
			middleware.LoggerFromContext(c).Warn("login rate limit check failed", slog.Any("error", err))
		}
		if !allowed {
			TooManyRequests(c, tooManyLoginsMessage)
			return
		}
	}

	user, err := h.catalog.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		Internal(c, "login", err)
		return
	}
	if user == nil || !h.passwords.Matches(req.Password, user.Password) {
		Unauthorized(c, invalidCredentialsMessage)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Signup 校验并创建用户，角色缺省为 customer。
func (h *AuthHandler) Signup(c *gin.Context) {
	var req schema.InsertUser
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, signupValidationMessage)
		return
	}

	password, err := h.passwords.Prepare(req.Password)
	if err != nil {
		Internal(c, "signup", err)
		return
	}
	req.Password = password

	user, err := h.catalog.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			BadRequest(c, signupDuplicateMessage)
			return
		}
		Internal(c, "signup", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}
