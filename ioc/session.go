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

package ioc

import (
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	redis2 "github.com/ecodeclub/ginx/session/redis"
	"github.com/ecodeclub/portfolio/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionExpiration = 24 * time.Hour
	defaultSessionCookie     = "portfolio_ssid"
)

// InitSession 只有管理员会登录，web 和 admin 两个服务共用同一个 provider
func InitSession(cmd redis.Cmdable) session.Provider {
	cfg := sessionConfig()
	sp := redis2.NewSessionProvider(cmd, cfg.SessionEncryptedKey, cfg.Expiration)
	sp.TokenCarrier = mixin.NewTokenCarrier(
		header.NewTokenCarrier(),
		&cookie.TokenCarrier{
			MaxAge:   int(cfg.Expiration.Seconds()),
			Name:     cfg.Cookie.Name,
			Secure:   cfg.Cookie.Secure,
			HttpOnly: true,
			Domain:   cfg.Cookie.Domain,
		})
	return sp
}

func sessionConfig() config.SessionConfig {
	var cfg config.SessionConfig
	if err := econf.UnmarshalKey("session", &cfg); err != nil {
		panic(err)
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = defaultSessionExpiration
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = defaultSessionCookie
	}
	return cfg
}
