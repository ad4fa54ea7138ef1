package store

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"designhub/internal/database"
	"designhub/internal/schema"
)

// CreateOrder 写入订单，状态固定为 pending。
// 设计或用户不存在时返回 ErrMissingReference。
func (s *Store) CreateOrder(ctx context.Context, in schema.InsertOrder) (*database.Order, error) {
	if err := s.requireDesignAndUser(ctx, "create order", in.DesignID, in.UserID); err != nil {
		return nil, err
	}

	order := database.Order{
		DesignID:          in.DesignID,
		UserID:            in.UserID,
		Status:            database.OrderStatusPending,
		Instructions:      in.Instructions,
		LogoURL:           in.LogoURL,
		ReferenceImages:   datatypes.NewJSONSlice(in.ReferenceImages),
		PreferredColors:   datatypes.NewJSONSlice(in.PreferredColors),
		UseOfficialColors: in.UseOfficialColors,
	}
	if err := s.conn(ctx).Create(&order).Error; err != nil {
		return nil, translate("create order", err)
	}
	return &order, nil
}

// GetOrdersByUser 返回用户的订单（附带设计），按创建时间倒序。
func (s *Store) GetOrdersByUser(ctx context.Context, userID uint) ([]database.Order, error) {
	orders := make([]database.Order, 0)
	err := s.conn(ctx).
		Joins("JOIN designs ON designs.id = orders.design_id").
		Preload("Design").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Order("orders.id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, translate("list orders", err)
	}
	return orders, nil
}

func (s *Store) requireDesignAndUser(ctx context.Context, op string, designID, userID uint) error {
	ok, err := s.exists(ctx, &database.Design{}, designID)
	if err != nil {
		return translate(op, err)
	}
	if !ok {
		return fmt.Errorf("%s: design %d: %w", op, designID, ErrMissingReference)
	}

	ok, err = s.exists(ctx, &database.User{}, userID)
	if err != nil {
		return translate(op, err)
	}
	if !ok {
		return fmt.Errorf("%s: user %d: %w", op, userID, ErrMissingReference)
	}
	return nil
}

// IncrementOrderCounters 在同一事务内为设计及其创建者的订单计数各加一。
func (s *Store) IncrementOrderCounters(ctx context.Context, designID uint) error {
	return s.Transaction(ctx, func(tx *Store) error {
		var design database.Design
		res := tx.conn(ctx).Select("id", "creator_id").Where("id = ?", designID).Limit(1).Find(&design)
		if res.Error != nil {
			return translate("increment order counters", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("increment order counters: design %d: %w", designID, ErrMissingReference)
		}

		if err := tx.conn(ctx).Model(&database.Design{}).
			Where("id = ?", design.ID).
			UpdateColumn("orders_count", gorm.Expr("orders_count + ?", 1)).Error; err != nil {
			return translate("increment design orders", err)
		}
		if err := tx.conn(ctx).Model(&database.Creator{}).
			Where("id = ?", design.CreatorID).
			UpdateColumn("total_orders", gorm.Expr("total_orders + ?", 1)).Error; err != nil {
			return translate("increment creator orders", err)
		}
		return nil
	})
}
