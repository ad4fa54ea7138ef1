package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"designhub/internal/auth"
	"designhub/internal/database"
	"designhub/internal/schema"
)

// Catalog 是路由层依赖的持久化操作集合，由 store.Store 实现。
type Catalog interface {
	GetUserByEmail(ctx context.Context, email string) (*database.User, error)
	CreateUser(ctx context.Context, in schema.InsertUser) (*database.User, error)
	GetCreator(ctx context.Context, id uint) (*database.Creator, error)
	GetCreators(ctx context.Context) ([]database.Creator, error)
	GetDesign(ctx context.Context, id uint) (*database.Design, error)
	GetDesigns(ctx context.Context, filters schema.DesignFilters) ([]database.Design, error)
	GetReviewsByDesign(ctx context.Context, designID uint) ([]database.Review, error)
	CreateOrder(ctx context.Context, in schema.InsertOrder) (*database.Order, error)
}

// TaskEnqueuer 由 *asynq.Client 实现。
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dependencies 汇总注册路由所需的组件；可选组件为 nil 时对应功能关闭。
type Dependencies struct {
	Catalog   Catalog
	Passwords auth.Passwords

	Tasks        TaskEnqueuer
	LoginLimiter *LoginLimiter
	Uploads      ObjectStorage
	Scanner      VirusScanner
	StaticDir    string
}

// RegisterRoutes 在 /api 前缀下注册全部业务路由。
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	designHandler := NewDesignHandler(deps.Catalog)
	creatorHandler := NewCreatorHandler(deps.Catalog)
	orderHandler := NewOrderHandler(deps.Catalog, deps.Tasks)
	authHandler := NewAuthHandler(deps.Catalog, deps.Passwords, deps.LoginLimiter)

	apiGroup := router.Group("/api")
	{
		designGroup := apiGroup.Group("/designs")
		{
			designGroup.GET("", designHandler.ListDesigns)
			designGroup.GET("/:id", designHandler.GetDesign)
			designGroup.GET("/:id/reviews", designHandler.ListReviews)
		}

		creatorGroup := apiGroup.Group("/creators")
		{
			creatorGroup.GET("", creatorHandler.ListCreators)
			creatorGroup.GET("/:id", creatorHandler.GetCreator)
		}

		orderGroup := apiGroup.Group("/orders")
		{
			orderGroup.POST("", orderHandler.CreateOrder)
			orderGroup.GET("", orderHandler.ListOrders)
		}

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/signup", authHandler.Signup)
		}

		if deps.Uploads != nil {
			uploadHandler := NewUploadHandler(deps.Uploads, deps.Scanner)
			uploadGroup := apiGroup.Group("/uploads")
			{
				uploadGroup.POST("", uploadHandler.UploadAsset)
				uploadGroup.GET("/url", uploadHandler.GetUploadURL)
			}
		}
	}

	router.NoRoute(StaticFallback(deps.StaticDir))
}
