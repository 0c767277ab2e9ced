// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength 註冊時密碼最短長度
const MinPasswordLength = 6

// bcryptCost 測試可調低以加快速度
var bcryptCost = bcrypt.DefaultCost

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
