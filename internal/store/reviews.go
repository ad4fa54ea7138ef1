package store

import (
	"context"

	"designhub/internal/database"
	"designhub/internal/schema"
)

// GetReviewsByDesign 返回设计的评价，按创建时间倒序；没有评价时返回空切片。
func (s *Store) GetReviewsByDesign(ctx context.Context, designID uint) ([]database.Review, error) {
	reviews := make([]database.Review, 0)
	err := s.conn(ctx).
		Where("design_id = ?", designID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, translate("list reviews", err)
	}
	return reviews, nil
}

// CreateReview 写入评价；UserName 按入参快照保存，不会随用户改名而变化。
func (s *Store) CreateReview(ctx context.Context, in schema.InsertReview) (*database.Review, error) {
	if err := s.requireDesignAndUser(ctx, "create review", in.DesignID, in.UserID); err != nil {
		return nil, err
	}

	review := database.Review{
		DesignID: in.DesignID,
		UserID:   in.UserID,
		UserName: in.UserName,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.conn(ctx).Create(&review).Error; err != nil {
		return nil, translate("create review", err)
	}
	return &review, nil
}
