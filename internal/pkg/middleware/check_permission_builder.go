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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckPermissionMiddlewareBuilder 校验 session 里面的权限标记位，需要放在登录校验之后
type CheckPermissionMiddlewareBuilder struct {
	claim     string
	sessionOf func(ctx *ginx.Context) (session.Session, error)
	logger    *elog.Component
}

func NewCheckPermissionMiddlewareBuilder(claim string) *CheckPermissionMiddlewareBuilder {
	return &CheckPermissionMiddlewareBuilder{
		claim:     claim,
		sessionOf: session.Get,
		logger:    elog.DefaultLogger,
	}
}

func (c *CheckPermissionMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sessionOf(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		if claims.Get(c.claim).StringOrDefault("") != "true" {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Error("非法访问 admin 接口，未设置权限",
				elog.Int64("uid", claims.Uid), elog.String("claim", c.claim))
			return
		}
	}
}
