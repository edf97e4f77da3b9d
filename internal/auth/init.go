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
	"crypto/rand"
	"time"

	"github.com/ecodeclub/portfolio/internal/auth/internal/domain"
	"github.com/ecodeclub/portfolio/internal/auth/internal/service"
	"github.com/ecodeclub/portfolio/internal/auth/internal/web"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultGateTTL     = 10 * time.Minute
	defaultMaxAttempts = 5
	defaultLockFor     = 15 * time.Minute
)

func initGateService(cfg Config) service.GateService {
	gate := domain.Gate{
		SecretCode:  cfg.SecretCode,
		SigningKey:  []byte(cfg.GateKey),
		TTL:         cfg.GateTTL,
		MaxAttempts: cfg.MaxAttempts,
		LockFor:     cfg.LockFor,
	}
	if gate.TTL <= 0 {
		gate.TTL = defaultGateTTL
	}
	if gate.MaxAttempts == 0 {
		gate.MaxAttempts = defaultMaxAttempts
	}
	if gate.LockFor <= 0 {
		gate.LockFor = defaultLockFor
	}
	if len(gate.SigningKey) == 0 {
		// 没有配置的时候每次启动随机生成，重启之后旧的令牌失效
		gate.SigningKey = make([]byte, 32)
		if _, err := rand.Read(gate.SigningKey); err != nil {
			panic(err)
		}
		elog.DefaultLogger.Warn("没有配置 admin.gateKey，使用随机密钥")
	}
	return service.NewGateService(gate)
}

func initLoginService(cfg Config) service.LoginService {
	return service.NewLoginService(domain.Admin{
		Uid:          cfg.Uid,
		Email:        cfg.Email,
		PasswordHash: cfg.PasswordHash,
	})
}

func initHandler(gateSvc service.GateService, loginSvc service.LoginService, cfg Config) *Handler {
	return web.NewHandler(gateSvc, loginSvc, cfg.SecureCookie)
}
