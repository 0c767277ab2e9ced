// Package auth 處理註冊、登入與個人資料
package auth

import (
	"github.com/vishnupriya759285/velookara/internal/service"
	"github.com/vishnupriya759285/velookara/internal/store"
)

// 方便測試替換
var (
	getUserByEmail   = store.GetUserByEmail
	createUser       = store.CreateUser
	updateProfile    = store.UpdateProfile
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)
