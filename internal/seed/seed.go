// Package seed 在目录为空时写入演示用的创建者与设计作品。
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"designhub/internal/database"
	"designhub/internal/schema"
	"designhub/internal/store"
)

type creatorSeed struct {
	user         schema.InsertUser
	bio          string
	profileImage string
	designs      []schema.InsertDesign
}

func badge(s string) *string { return &s }

func samples() []creatorSeed {
	return []creatorSeed{
		{
			user: schema.InsertUser{
				Username: "alex_design", Email: "alex@test.com", Password: "password", Name: "Alex Chen", Role: database.RoleCreator,
			},
			bio:          "Professional graphic designer with 5 years of experience in branding and social media.",
			profileImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400",
			designs: []schema.InsertDesign{
				{
					Title:             "Viral Gaming Thumbnail Pack",
					Description:       "High CTR thumbnails for gaming channels. Includes 5 customizable PSD files.",
					Price:             25.00,
					DeliveryTimeHours: 24,
					Category:          "YouTube Thumbnail",
					Image:             "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=600",
					Rating:            4.9,
					Likes:             124,
					OrdersCount:       45,
					Badge:             badge("Trending"),
				},
				{
					Title:             "Modern Tech Event Poster",
					Description:       "Clean, modern poster design for tech conferences and meetups.",
					Price:             45.00,
					DeliveryTimeHours: 48,
					Category:          "Poster",
					Image:             "https://images.unsplash.com/photo-1558655146-d09347e0b7a9?w=600",
					Rating:            4.7,
					Likes:             89,
					OrdersCount:       22,
					Badge:             badge("Top Rated"),
				},
			},
		},
		{
			user: schema.InsertUser{
				Username: "sarah_studio", Email: "sarah@test.com", Password: "password", Name: "Sarah Miller", Role: database.RoleCreator,
			},
			bio:          "Specialist in high-conversion YouTube thumbnails and ad creatives.",
			profileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
			designs: []schema.InsertDesign{
				{
					Title:             "E-commerce Sale Banner Set",
					Description:       "Complete set of social media banners for seasonal sales.",
					Price:             30.00,
					DeliveryTimeHours: 24,
					Category:          "Banner",
					Image:             "https://images.unsplash.com/photo-1557804506-669a67965ba0?w=600",
					Rating:            5.0,
					Likes:             210,
					OrdersCount:       89,
					Badge:             badge("Trending"),
				},
				{
					Title:             "Podcast Cover Art",
					Description:       "Eye-catching artwork for your new podcast.",
					Price:             35.00,
					DeliveryTimeHours: 48,
					Category:          "Poster",
					Image:             "https://images.unsplash.com/photo-1478737270239-2f02b77ac6d5?w=600",
					Rating:            4.8,
					Likes:             56,
					OrdersCount:       15,
					Badge:             badge("New"),
				},
			},
		},
	}
}

// PasswordFunc 把明文密码转换为入库形式。
type PasswordFunc func(plain string) (string, error)

// Run 在没有任何创建者时写入示例数据；只要已存在一个创建者就整体跳过。
// 全部写入在一个事务内完成，返回是否执行了写入。
func Run(ctx context.Context, s *store.Store, prepare PasswordFunc, logger *slog.Logger) (bool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seeded := false
	err := s.Transaction(ctx, func(tx *store.Store) error {
		exists, err := tx.HasCreators(ctx)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		logger.Info("seeding database")
		for _, c := range samples() {
			in := c.user
			if prepare != nil {
				if in.Password, err = prepare(in.Password); err != nil {
					return fmt.Errorf("prepare password for %s: %w", in.Username, err)
				}
			}

			user, err := tx.CreateUser(ctx, in)
			if err != nil {
				return err
			}
			creator, err := tx.CreateCreator(ctx, user.ID, c.bio, c.profileImage)
			if err != nil {
				return err
			}
			for _, d := range c.designs {
				d.CreatorID = creator.ID
				if _, err := tx.CreateDesign(ctx, d); err != nil {
					return err
				}
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed database: %w", err)
	}

	if seeded {
		logger.Info("database seeded")
	} else {
		logger.Info("creators already present, skipping seed")
	}
	return seeded, nil
}
