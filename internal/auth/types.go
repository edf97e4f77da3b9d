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

package auth

import (
	"time"

	"github.com/ecodeclub/portfolio/internal/auth/internal/web"
)

type Handler = web.Handler

const GateCookie = web.GateCookie

type Config struct {
	Uid          int64  `yaml:"uid"`
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"passwordHash"`
	// SecretCode 来自环境变量 ADMIN_SECRET_CODE
	SecretCode   string        `yaml:"-"`
	GateKey      string        `yaml:"gateKey"`
	GateTTL      time.Duration `yaml:"gateTTL"`
	MaxAttempts  int           `yaml:"maxAttempts"`
	LockFor      time.Duration `yaml:"lockFor"`
	SecureCookie bool          `yaml:"secureCookie"`
}

type Module struct {
	Hdl *Handler
}
