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

package service

import (
	"context"
	"strings"

	"github.com/ecodeclub/portfolio/internal/auth/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type LoginService interface {
	// Login 返回管理员，邮箱或者密码不对的时候返回 ErrInvalidCredentials
	Login(ctx context.Context, email, password string) (domain.Admin, error)
}

type loginService struct {
	admin domain.Admin
}

func NewLoginService(admin domain.Admin) LoginService {
	return &loginService{admin: admin}
}

func (s *loginService) Login(ctx context.Context, email, password string) (domain.Admin, error) {
	// 邮箱不对也比较一次密码，两种失败的耗时一样
	err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))
	if !strings.EqualFold(strings.TrimSpace(email), s.admin.Email) || err != nil {
		return domain.Admin{}, domain.ErrInvalidCredentials
	}
	return s.admin, nil
}
