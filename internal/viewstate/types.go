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

package viewstate

import (
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/repository"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/service"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/web"
	"github.com/gin-gonic/gin"
)

type Handler = web.Handler
type State = domain.State
type Theme = domain.Theme
type Mode = domain.Mode
type Store = service.Store
type Persister = repository.Persister
type CookieConfig = repository.CookieConfig

const (
	ThemeMinimal = domain.ThemeMinimal
	ThemeDark    = domain.ThemeDark
	ThemeAurora  = domain.ThemeAurora
	ThemeGlass   = domain.ThemeGlass
)

func NewStore(initial State) *Store {
	return service.NewStore(initial)
}

// NewCookiePersister 导出页面需要读取当前主题
func NewCookiePersister(ctx *gin.Context, cfg CookieConfig) Persister {
	return repository.NewCookiePersister(ctx, cfg)
}

type Module struct {
	Hdl *Handler
}
