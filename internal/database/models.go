package database

import (
	"time"

	"gorm.io/datatypes"
)

// 用户角色。
const (
	RoleCustomer = "customer"
	RoleCreator  = "creator"
)

// OrderStatusPending 是订单创建时由系统赋予的状态。
const OrderStatusPending = "pending"

// User 表示系统中的账号信息。
// Password 按原样返回给登录接口调用方，演示环境不做会话管理。
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"password"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Role      string    `gorm:"size:32;default:customer" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Creator 表示可以出售设计作品的用户。
type Creator struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"not null;index" json:"userId"`
	User         *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"user,omitempty"`
	Bio          string  `gorm:"type:text;not null" json:"bio"`
	ProfileImage string  `gorm:"type:text;not null" json:"profileImage"`
	Rating       float64 `gorm:"type:decimal(3,1);default:0" json:"rating"`
	TotalOrders  int     `gorm:"default:0" json:"totalOrders"`
}

// Design 表示商品目录中的一件设计作品。
type Design struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CreatorID         uint      `gorm:"not null;index" json:"creatorId"`
	Creator           *Creator  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"creator,omitempty"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Description       string    `gorm:"type:text;not null" json:"description"`
	Price             float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	DeliveryTimeHours int       `gorm:"not null" json:"deliveryTimeHours"`
	Category          string    `gorm:"size:64;not null;index" json:"category"` // YouTube Thumbnail, Poster, Banner
	Image             string    `gorm:"type:text;not null" json:"image"`
	Rating            float64   `gorm:"type:decimal(3,1);default:0" json:"rating"`
	Likes             int       `gorm:"default:0" json:"likes"`
	OrdersCount       int       `gorm:"default:0" json:"ordersCount"`
	Badge             *string   `gorm:"size:32" json:"badge"` // Top, Trending, New
	CreatedAt         time.Time `json:"createdAt"`
}

// Order 表示顾客对某件设计的定制请求。
type Order struct {
	ID                uint                        `gorm:"primaryKey" json:"id"`
	DesignID          uint                        `gorm:"not null;index" json:"designId"`
	Design            *Design                     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"design,omitempty"`
	UserID            uint                        `gorm:"not null;index" json:"userId"`
	User              *User                       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status            string                      `gorm:"size:32;default:pending" json:"status"`
	Instructions      *string                     `gorm:"type:text" json:"instructions"`
	LogoURL           *string                     `gorm:"type:text" json:"logoUrl"`
	ReferenceImages   datatypes.JSONSlice[string] `json:"referenceImages"`
	PreferredColors   datatypes.JSONSlice[string] `json:"preferredColors"`
	UseOfficialColors bool                        `gorm:"default:false" json:"useOfficialColors"`
	CreatedAt         time.Time                   `gorm:"index" json:"createdAt"`
}

// Review 表示用户对设计作品的评价，UserName 为创建时的快照。
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DesignID  uint      `gorm:"not null;index" json:"designId"`
	Design    *Design   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	UserName  string    `gorm:"size:255;not null" json:"userName"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
