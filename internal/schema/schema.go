// Package schema 定义各实体的可写入字段集合以及入参校验规则。
//
// 插入结构体不包含主键、时间戳与系统赋值字段（例如订单状态），
// 供路由层绑定请求体，也供持久层与种子数据直接使用。
package schema

// InsertUser 是注册用户时允许写入的字段。
type InsertUser struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=customer creator"`
}

// InsertCreator 是创建者档案的可写入字段。
type InsertCreator struct {
	UserID       uint   `json:"userId" binding:"required"`
	Bio          string `json:"bio" binding:"required"`
	ProfileImage string `json:"profileImage" binding:"required"`
}

// InsertDesign 是设计作品的可写入字段。
type InsertDesign struct {
	CreatorID         uint    `json:"creatorId" binding:"required"`
	Title             string  `json:"title" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	Price             float64 `json:"price" binding:"gte=0"`
	DeliveryTimeHours int     `json:"deliveryTimeHours" binding:"required,gt=0"`
	Category          string  `json:"category" binding:"required"`
	Image             string  `json:"image" binding:"required"`
	Rating            float64 `json:"rating" binding:"gte=0,lte=5"`
	Likes             int     `json:"likes" binding:"gte=0"`
	OrdersCount       int     `json:"ordersCount" binding:"gte=0"`
	Badge             *string `json:"badge"`
}

// InsertOrder 是下单请求的可写入字段，状态由系统赋值。
type InsertOrder struct {
	DesignID          uint     `json:"designId" binding:"required"`
	UserID            uint     `json:"userId" binding:"required"`
	Instructions      *string  `json:"instructions"`
	LogoURL           *string  `json:"logoUrl"`
	ReferenceImages   []string `json:"referenceImages"`
	PreferredColors   []string `json:"preferredColors"`
	UseOfficialColors bool     `json:"useOfficialColors"`
}

// InsertReview 是评价的可写入字段，UserName 为当时的用户名快照。
type InsertReview struct {
	DesignID uint   `json:"designId" binding:"required"`
	UserID   uint   `json:"userId" binding:"required"`
	UserName string `json:"userName" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required"`
}

// Login 是登录请求体。
type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// DesignFilters 描述设计列表的可选过滤条件，多个条件按 AND 组合。
// 零值表示不过滤。
type DesignFilters struct {
	Category  string
	CreatorID uint
	Search    string
}
