package service

import (
	"context"
	"errors"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
)

// AuthenticateUser 以 bcrypt 比對明文密碼，僅檢查憑證本身，
// 帳號狀態由呼叫端在憑證通過後另行判斷
func AuthenticateUser(_ context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
