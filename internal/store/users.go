package store

import (
	"context"

	"designhub/internal/database"
	"designhub/internal/schema"
)

// GetUser 按主键查询用户，不存在时返回 nil。
func (s *Store) GetUser(ctx context.Context, id uint) (*database.User, error) {
	var users []database.User
	if err := s.conn(ctx).Where("id = ?", id).Limit(1).Find(&users).Error; err != nil {
		return nil, translate("get user", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// GetUserByEmail 按邮箱精确查询用户，不存在时返回 nil。
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*database.User, error) {
	var users []database.User
	if err := s.conn(ctx).Where("email = ?", email).Limit(1).Find(&users).Error; err != nil {
		return nil, translate("get user by email", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// CreateUser 写入新用户；用户名或邮箱重复时返回 ErrDuplicate。
func (s *Store) CreateUser(ctx context.Context, in schema.InsertUser) (*database.User, error) {
	user := database.User{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Role:     in.Role,
	}
	if user.Role == "" {
		user.Role = database.RoleCustomer
	}

	if err := s.conn(ctx).Create(&user).Error; err != nil {
		return nil, translate("create user", err)
	}
	return &user, nil
}
