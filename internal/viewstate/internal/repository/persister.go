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

package repository

import (
	"context"
	"net/http"

	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	ThemeCookie = "resume-theme"
	ModeCookie  = "resume-view-mode"
)

// Persister 加载和保存展示状态，是唯一有副作用的边界
type Persister interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

type CookieConfig struct {
	MaxAge int
	Secure bool
}

// CookiePersister 把状态保存在浏览器 cookie 里面，作用域是单次请求
type CookiePersister struct {
	ctx *gin.Context
	cfg CookieConfig
}

func NewCookiePersister(ctx *gin.Context, cfg CookieConfig) *CookiePersister {
	return &CookiePersister{
		ctx: ctx,
		cfg: cfg,
	}
}

func (p *CookiePersister) Load(ctx context.Context) (domain.State, error) {
	// 没有 cookie 或者值不认识都使用默认值
	theme, _ := p.ctx.Cookie(ThemeCookie)
	mode, _ := p.ctx.Cookie(ModeCookie)
	return domain.State{
		Theme: domain.ParseTheme(theme),
		Mode:  domain.ParseMode(mode),
	}, nil
}

func (p *CookiePersister) Save(ctx context.Context, state domain.State) error {
	p.ctx.SetSameSite(http.SameSiteLaxMode)
	p.ctx.SetCookie(ThemeCookie, state.Theme.String(), p.cfg.MaxAge, "/", "", p.cfg.Secure, false)
	p.ctx.SetCookie(ModeCookie, state.Mode.String(), p.cfg.MaxAge, "/", "", p.cfg.Secure, false)
	return nil
}
