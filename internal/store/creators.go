package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"designhub/internal/database"
)

// defaultCreatorRating 是新创建者档案的初始评分。
const defaultCreatorRating = 5.0

// GetCreator 返回带用户信息的创建者，不存在时返回 nil。
func (s *Store) GetCreator(ctx context.Context, id uint) (*database.Creator, error) {
	var creators []database.Creator
	if err := s.creatorsWithUser(ctx).Where("creators.id = ?", id).Limit(1).Find(&creators).Error; err != nil {
		return nil, translate("get creator", err)
	}
	if len(creators) == 0 {
		return nil, nil
	}
	return &creators[0], nil
}

// GetCreators 返回全部创建者（按插入顺序），每项附带用户信息。
func (s *Store) GetCreators(ctx context.Context) ([]database.Creator, error) {
	creators := make([]database.Creator, 0)
	if err := s.creatorsWithUser(ctx).Order("creators.id ASC").Find(&creators).Error; err != nil {
		return nil, translate("list creators", err)
	}
	return creators, nil
}

// HasCreators 判断是否已存在任意创建者。
func (s *Store) HasCreators(ctx context.Context) (bool, error) {
	var count int64
	if err := s.conn(ctx).Model(&database.Creator{}).Count(&count).Error; err != nil {
		return false, translate("count creators", err)
	}
	return count > 0, nil
}

// CreateCreator 为已有用户创建档案，评分初始化为 5.0、订单数为 0。
// userID 不存在时返回 ErrMissingReference。
func (s *Store) CreateCreator(ctx context.Context, userID uint, bio, profileImage string) (*database.Creator, error) {
	ok, err := s.exists(ctx, &database.User{}, userID)
	if err != nil {
		return nil, translate("create creator", err)
	}
	if !ok {
		return nil, fmt.Errorf("create creator: user %d: %w", userID, ErrMissingReference)
	}

	creator := database.Creator{
		UserID:       userID,
		Bio:          bio,
		ProfileImage: profileImage,
		Rating:       defaultCreatorRating,
		TotalOrders:  0,
	}
	if err := s.conn(ctx).Create(&creator).Error; err != nil {
		return nil, translate("create creator", err)
	}
	return &creator, nil
}

// creatorsWithUser 以内连接限定必须存在对应用户，再预加载用户行用于组合视图。
func (s *Store) creatorsWithUser(ctx context.Context) *gorm.DB {
	return s.conn(ctx).
		Joins("JOIN users ON users.id = creators.user_id").
		Preload("User")
}
