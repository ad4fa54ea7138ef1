// Package store 封装市场数据的关系型读写，并在读取时组合嵌套视图
// （设计 -> 创建者 -> 用户）。组合视图不落库，每次查询即时计算。
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate 表示违反唯一约束（用户名或邮箱已存在）。
	ErrDuplicate = errors.New("store: duplicate value")
	// ErrMissingReference 表示外键指向的行不存在。
	ErrMissingReference = errors.New("store: referenced row does not exist")
)

// Store 基于 GORM 实现全部持久化操作。
type Store struct {
	db *gorm.DB
}

// New 构造 Store。
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction 在同一事务内执行 fn，fn 返回错误时回滚。
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// translate 把驱动层约束错误折算为包内哨兵错误。
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrMissingReference)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// exists 判断 model 对应表中是否有主键为 id 的行。
func (s *Store) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := s.conn(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
