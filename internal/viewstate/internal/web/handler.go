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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/repository"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc       profile.ProfileService
	owner     int64
	persister func(ctx *gin.Context) repository.Persister
	logger    *elog.Component
}

func NewHandler(svc profile.ProfileService, owner int64, cfg repository.CookieConfig) *Handler {
	return &Handler{
		svc:   svc,
		owner: owner,
		persister: func(ctx *gin.Context) repository.Persister {
			return repository.NewCookiePersister(ctx, cfg)
		},
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/view-state", ginx.W(h.State))
	server.POST("/view-state/theme", ginx.B[ThemeReq](h.SetTheme))
	server.POST("/view-state/mode", ginx.B[ModeReq](h.SetMode))
	server.GET("/profile/view", ginx.W(h.View))
}

func (h *Handler) State(ctx *ginx.Context) (ginx.Result, error) {
	vs, err := h.load(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newState(vs.Current()),
	}, nil
}

func (h *Handler) SetTheme(ctx *ginx.Context, req ThemeReq) (ginx.Result, error) {
	vs, err := h.load(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	if err = vs.SetTheme(domain.Theme(req.Theme)); err != nil {
		return invalidThemeResult, nil
	}
	if vs.saveErr != nil {
		return systemErrorResult, vs.saveErr
	}
	return ginx.Result{
		Data: newState(vs.Current()),
	}, nil
}

func (h *Handler) SetMode(ctx *ginx.Context, req ModeReq) (ginx.Result, error) {
	vs, err := h.load(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	if err = vs.SetMode(domain.Mode(req.Mode)); err != nil {
		return invalidModeResult, nil
	}
	if vs.saveErr != nil {
		return systemErrorResult, vs.saveErr
	}
	return ginx.Result{
		Data: newState(vs.Current()),
	}, nil
}

// View 没有传 mode 的时候使用保存的模式
func (h *Handler) View(ctx *ginx.Context) (ginx.Result, error) {
	mode := domain.Mode(ctx.Context.Query("mode"))
	if mode == "" {
		vs, err := h.load(ctx)
		if err != nil {
			return systemErrorResult, err
		}
		mode = vs.Current().Mode
	}
	if !mode.Valid() {
		return invalidModeResult, nil
	}
	p, err := h.svc.Profile(ctx, h.owner)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: service.Project(profile.NewProfileVO(p), mode),
	}, nil
}

type viewState struct {
	*service.Store
	// 最近一次写回 cookie 的结果
	saveErr error
}

// load 从 cookie 里面恢复状态，并且在每次变更之后写回去
func (h *Handler) load(ctx *ginx.Context) (*viewState, error) {
	persister := h.persister(ctx.Context)
	state, err := persister.Load(ctx)
	if err != nil {
		return nil, err
	}
	vs := &viewState{Store: service.NewStore(state)}
	vs.Subscribe(func(s domain.State) {
		vs.saveErr = persister.Save(ctx, s)
	})
	return vs, nil
}
