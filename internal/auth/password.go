package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Passwords 决定密码的入库形式与比对方式。
// 默认保留明文比对（演示环境行为），开启 hash 后改用 bcrypt。
type Passwords struct {
	hash bool
}

// NewPasswords 构造密码策略。
func NewPasswords(hash bool) Passwords {
	return Passwords{hash: hash}
}

// Hashed 报告是否启用了 bcrypt。
func (p Passwords) Hashed() bool { return p.hash }

// Prepare 返回应写入数据库的密码。
func (p Passwords) Prepare(password string) (string, error) {
	if !p.hash {
		return password, nil
	}
	return HashPassword(password)
}

// Matches 校验请求中的密码是否与库中存储值一致。
func (p Passwords) Matches(password, stored string) bool {
	if p.hash {
		return CheckPasswordHash(password, stored)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// HashPassword 使用 bcrypt 生成密码哈希。
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash 校验密码是否匹配哈希。
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
