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
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/portfolio/internal/auth/internal/domain"
	"github.com/ecodeclub/portfolio/internal/auth/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const GateCookie = "admin_access"

type Handler struct {
	gateSvc  service.GateService
	loginSvc service.LoginService
	// 访问码的 cookie 是否只在 https 下发送
	secure     bool
	newSession func(ctx *ginx.Context, uid int64, jwtData map[string]string) error
	logger     *elog.Component
}

func NewHandler(gateSvc service.GateService, loginSvc service.LoginService, secure bool) *Handler {
	return &Handler{
		gateSvc:  gateSvc,
		loginSvc: loginSvc,
		secure:   secure,
		newSession: func(ctx *ginx.Context, uid int64, jwtData map[string]string) error {
			_, err := session.NewSessionBuilder(ctx, uid).SetJwtData(jwtData).Build()
			return err
		},
		logger: elog.DefaultLogger,
	}
}

// PublicRoutes 登录之前就要能访问
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/auth")
	g.POST("/verify-code", ginx.B[VerifyCodeReq](h.VerifyCode))
	g.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/auth")
	g.POST("/logout", ginx.S(h.Logout))
	g.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) VerifyCode(ctx *ginx.Context, req VerifyCodeReq) (ginx.Result, error) {
	token, err := h.gateSvc.Verify(ctx.Context.ClientIP(), req.Code)
	switch {
	case errors.Is(err, domain.ErrInvalidCode):
		h.logger.Warn("访问码错误", elog.String("ip", ctx.Context.ClientIP()))
		return invalidCodeResult, nil
	case errors.Is(err, domain.ErrTooManyAttempts):
		h.logger.Warn("访问码尝试次数过多", elog.String("ip", ctx.Context.ClientIP()))
		return tooManyAttemptsResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	ctx.Context.SetSameSite(http.SameSiteStrictMode)
	ctx.Context.SetCookie(GateCookie, token, int(h.gateSvc.TTL().Seconds()), "/", "", h.secure, true)
	return ginx.Result{Msg: "OK"}, nil
}

// Login 需要先通过访问码校验
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	token, _ := ctx.Context.Cookie(GateCookie)
	if err := h.gateSvc.Check(token); err != nil {
		h.logger.Warn("没有通过访问码校验就尝试登录", elog.FieldErr(err))
		ctx.Context.AbortWithStatusJSON(http.StatusForbidden, gateRequiredResult)
		return gateRequiredResult, ginx.ErrNoResponse
	}
	admin, err := h.loginSvc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return invalidCredentialsResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	err = h.newSession(ctx, admin.Uid, map[string]string{
		"creator": strconv.FormatBool(true),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: Profile{Uid: admin.Uid, Email: admin.Email},
	}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := sess.Destroy(ctx); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return ginx.Result{
		Data: Profile{Uid: sess.Claims().Uid},
	}, nil
}
