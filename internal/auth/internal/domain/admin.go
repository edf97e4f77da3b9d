// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCode        = errors.New("Invalid access code. Please try again.")
	ErrTooManyAttempts    = errors.New("Too many attempts. Please try again later.")
	ErrGateRequired       = errors.New("Access code verification required. Please verify the access code first.")
	ErrInvalidCredentials = errors.New("Invalid email or password.")
)

// Admin 站点只有一个管理员，数据都归属于 Uid
type Admin struct {
	Uid          int64
	Email        string
	PasswordHash string
}

// Gate 登录之前的访问码校验，通过之后只签发一个短期的令牌，不携带身份
type Gate struct {
	SecretCode string
	SigningKey []byte
	TTL        time.Duration
	// 同一个客户端连续失败的上限
	MaxAttempts int
	LockFor     time.Duration
}
