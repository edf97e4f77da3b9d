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
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/portfolio/config"
	"github.com/ecodeclub/portfolio/internal/contact"
	"github.com/ecodeclub/portfolio/internal/export"
	"github.com/ecodeclub/portfolio/internal/pkg/middleware"
	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/ecodeclub/portfolio/internal/viewstate"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type WebServer *egin.Component

func InitWebServer(sp session.Provider,
	pm *profile.Module,
	cm *contact.Module,
	vm *viewstate.Module,
	em *export.Module,
) WebServer {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	pm.Hdl.PublicRoutes(res.Engine)
	vm.Hdl.PublicRoutes(res.Engine)
	cm.Hdl.PublicRoutes(res.Engine)
	// /api/export/pdf 自己校验登录态
	em.Hdl.PublicRoutes(res.Engine)
	return res
}

func corsMiddleware() gin.HandlerFunc {
	var cfg config.CORSConfig
	if err := econf.UnmarshalKey("cors", &cfg); err != nil {
		panic(err)
	}
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token", "X-Request-Id", "Content-Disposition"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, allowed := range cfg.AllowOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	})
}
