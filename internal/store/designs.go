package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"designhub/internal/database"
	"designhub/internal/schema"
)

// GetDesign 返回设计及其创建者、创建者对应用户的两级组合视图，不存在时返回 nil。
func (s *Store) GetDesign(ctx context.Context, id uint) (*database.Design, error) {
	var designs []database.Design
	if err := s.designsWithCreator(ctx).Where("designs.id = ?", id).Limit(1).Find(&designs).Error; err != nil {
		return nil, translate("get design", err)
	}
	if len(designs) == 0 {
		return nil, nil
	}
	return &designs[0], nil
}

// GetDesigns 按过滤条件列出设计。条件之间为 AND：
// 分类精确匹配、创建者精确匹配、标题不区分大小写的子串匹配。
func (s *Store) GetDesigns(ctx context.Context, filters schema.DesignFilters) ([]database.Design, error) {
	query := s.designsWithCreator(ctx)

	if filters.Category != "" {
		query = query.Where("designs.category = ?", filters.Category)
	}
	if filters.CreatorID != 0 {
		query = query.Where("designs.creator_id = ?", filters.CreatorID)
	}
	if filters.Search != "" {
		query = query.Where("LOWER(designs.title) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}

	designs := make([]database.Design, 0)
	if err := query.Order("designs.id ASC").Find(&designs).Error; err != nil {
		return nil, translate("list designs", err)
	}
	return designs, nil
}

// CreateDesign 写入设计并返回插入后的行；creatorId 不存在时返回 ErrMissingReference。
func (s *Store) CreateDesign(ctx context.Context, in schema.InsertDesign) (*database.Design, error) {
	ok, err := s.exists(ctx, &database.Creator{}, in.CreatorID)
	if err != nil {
		return nil, translate("create design", err)
	}
	if !ok {
		return nil, fmt.Errorf("create design: creator %d: %w", in.CreatorID, ErrMissingReference)
	}

	design := database.Design{
		CreatorID:         in.CreatorID,
		Title:             in.Title,
		Description:       in.Description,
		Price:             in.Price,
		DeliveryTimeHours: in.DeliveryTimeHours,
		Category:          in.Category,
		Image:             in.Image,
		Rating:            in.Rating,
		Likes:             in.Likes,
		OrdersCount:       in.OrdersCount,
		Badge:             in.Badge,
	}
	if err := s.conn(ctx).Create(&design).Error; err != nil {
		return nil, translate("create design", err)
	}
	return &design, nil
}

func (s *Store) designsWithCreator(ctx context.Context) *gorm.DB {
	return s.conn(ctx).
		Joins("JOIN creators ON creators.id = designs.creator_id").
		Joins("JOIN users ON users.id = creators.user_id").
		Preload("Creator.User")
}
