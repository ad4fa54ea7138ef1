package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"designhub/internal/auth"
	"designhub/internal/config"
	"designhub/internal/database"
	"designhub/internal/schema"
	"designhub/internal/store"
)

// creatorAccount 是命令行创建创建者账号所需的输入。
type creatorAccount struct {
	Username     string
	Email        string
	Name         string
	Bio          string
	ProfileImage string
}

func main() {
	var (
		username     = flag.String("username", "", "创建者用户名（必填）")
		email        = flag.String("email", "", "登录邮箱（必填）")
		name         = flag.String("name", "", "展示名称（默认同用户名）")
		bio          = flag.String("bio", "", "个人简介")
		profileImage = flag.String("profile-image", "", "头像 URL")
	)
	flag.Parse()

	in := creatorAccount{
		Username:     strings.TrimSpace(*username),
		Email:        strings.TrimSpace(*email),
		Name:         strings.TrimSpace(*name),
		Bio:          strings.TrimSpace(*bio),
		ProfileImage: strings.TrimSpace(*profileImage),
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	password, err := generateRandomPassword(18)
	if err != nil {
		log.Fatalf("generate password: %v", err)
	}

	passwords := auth.NewPasswords(cfg.Auth.HashPasswords)
	creator, err := createCreatorAccount(context.Background(), store.New(db), passwords, in, password)
	if err != nil {
		log.Fatalf("create creator: %v", err)
	}

	fmt.Printf("已创建创建者账号：\n")
	fmt.Printf("创建者 ID: %d\n", creator.ID)
	fmt.Printf("登录邮箱: %s\n", in.Email)
	fmt.Printf("初始密码: %s\n", password)
	fmt.Printf("提示：该密码仅显示一次。\n")
}

// createCreatorAccount 在一个事务内创建 creator 角色的用户及其档案。
func createCreatorAccount(ctx context.Context, s *store.Store, passwords auth.Passwords, in creatorAccount, password string) (*database.Creator, error) {
	if in.Username == "" || in.Email == "" {
		return nil, errors.New("missing required flag: --username and --email")
	}
	if in.Name == "" {
		in.Name = in.Username
	}

	user := schema.InsertUser{
		Username: in.Username,
		Email:    in.Email,
		Password: password,
		Name:     in.Name,
		Role:     database.RoleCreator,
	}
	if err := schema.Validate(user); err != nil {
		return nil, err
	}

	stored, err := passwords.Prepare(password)
	if err != nil {
		return nil, err
	}
	user.Password = stored

	var creator *database.Creator
	err = s.Transaction(ctx, func(tx *store.Store) error {
		created, err := tx.CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fmt.Errorf("user %q or email %q already exists", in.Username, in.Email)
			}
			return err
		}
		creator, err = tx.CreateCreator(ctx, created.ID, in.Bio, in.ProfileImage)
		return err
	})
	if err != nil {
		return nil, err
	}
	return creator, nil
}

func generateRandomPassword(bytesLen int) (string, error) {
	if bytesLen <= 0 {
		bytesLen = 18
	}
	buf := make([]byte, bytesLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
