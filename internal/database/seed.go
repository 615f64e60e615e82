package database

import (
	"context"
	"fmt"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/service"
)

// 預設管理者帳號，僅供本地開發與初次部署使用
const (
	seedAdminEmail    = "admin@lemoncode.com"
	seedAdminPassword = "password123"
	seedAdminPhone    = "+60123456789"
)

var hashPassword = service.HashPassword

// Seed 建立預設管理者帳號，email 已存在時不做任何動作
func Seed(ctx context.Context, db DB) error {
	hash, err := hashPassword(seedAdminPassword)
	if err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	_, err = db.Exec(ctx,
		`INSERT INTO users (name, firstname, lastname, email, phone, password_hash, status)
		 VALUES ($1, $2, $3, $4, $5, $6, 'active')
		 ON CONFLICT (email) DO NOTHING`,
		"Admin User",
		"Admin",
		"User",
		seedAdminEmail,
		seedAdminPhone,
		hash,
	)
	if err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	return nil
}
