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
	"mime"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/portfolio/internal/export/internal/domain"
	"github.com/ecodeclub/portfolio/internal/export/internal/service"
	"github.com/ecodeclub/portfolio/internal/viewstate"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

const requestIdHeader = "X-Request-Id"

type Handler struct {
	svc   service.Service
	owner int64
	// theme 当前访问者选择的主题
	theme     func(ctx *gin.Context) string
	sessionOf func(ctx *ginx.Context) (session.Session, error)
	logger    *elog.Component
}

func NewHandler(svc service.Service, owner int64, cfg viewstate.CookieConfig) *Handler {
	return &Handler{
		svc:   svc,
		owner: owner,
		theme: func(ctx *gin.Context) string {
			if theme := ctx.Query("theme"); theme != "" {
				return theme
			}
			state, err := viewstate.NewCookiePersister(ctx, cfg).Load(ctx)
			if err != nil {
				return viewstate.ThemeMinimal.String()
			}
			return state.Theme.String()
		},
		sessionOf: session.Get,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/export")
	g.GET("/json", ginx.W(h.JSON))
	g.GET("/markdown", ginx.W(h.Markdown))
	g.GET("/docx", ginx.W(h.DOCX))
	g.GET("/pdf", ginx.W(h.PDF))
	g.GET("/print", ginx.W(h.Print))
	server.POST("/api/export/pdf", h.Aggregate)
}

func (h *Handler) JSON(ctx *ginx.Context) (ginx.Result, error) {
	return h.export(ctx, domain.FormatJSON, func() (domain.Document, error) {
		return h.svc.JSONResume(ctx, h.owner)
	})
}

func (h *Handler) Markdown(ctx *ginx.Context) (ginx.Result, error) {
	return h.export(ctx, domain.FormatMarkdown, func() (domain.Document, error) {
		return h.svc.Markdown(ctx, h.owner, ctx.Request.Header.Get("Accept-Language"))
	})
}

func (h *Handler) DOCX(ctx *ginx.Context) (ginx.Result, error) {
	return h.export(ctx, domain.FormatDOCX, func() (domain.Document, error) {
		return h.svc.DOCX(ctx, h.owner)
	})
}

func (h *Handler) PDF(ctx *ginx.Context) (ginx.Result, error) {
	return h.export(ctx, domain.FormatPDF, func() (domain.Document, error) {
		return h.svc.PDF(ctx, h.owner, h.theme(ctx.Context))
	})
}

// Print 浏览器里面直接打开的打印版本，不是附件
func (h *Handler) Print(ctx *ginx.Context) (ginx.Result, error) {
	return h.export(ctx, domain.FormatHTML, func() (domain.Document, error) {
		return h.svc.PrintHTML(ctx, h.owner, h.theme(ctx.Context))
	})
}

func (h *Handler) export(ctx *ginx.Context, f domain.Format,
	fn func() (domain.Document, error)) (ginx.Result, error) {
	requestId := shortuuid.New()
	ctx.Context.Header(requestIdHeader, requestId)
	doc, err := fn()
	switch {
	case errors.Is(err, domain.ErrNoResumeData):
		return noResumeDataResult, nil
	case errors.Is(err, domain.ErrPrinterUnavailable):
		h.logger.Warn("PDF 渲染服务不可用",
			elog.String("requestId", requestId), elog.FieldErr(err))
		return printerUnavailableResult, nil
	case err != nil:
		h.logger.Error("导出简历失败",
			elog.String("requestId", requestId),
			elog.String("format", string(f)),
			elog.FieldErr(err))
		return systemErrorResult, err
	}

	if doc.RedirectURL != "" {
		h.logger.Info("PDF 使用配置的下载地址",
			elog.String("requestId", requestId), elog.String("url", doc.RedirectURL))
		ctx.Redirect(http.StatusFound, doc.RedirectURL)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if f != domain.FormatHTML {
		ctx.Context.Header("Content-Disposition",
			mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	}
	ctx.Data(http.StatusOK, doc.Format.ContentType(), doc.Data)
	h.logger.Info("导出简历",
		elog.String("requestId", requestId),
		elog.String("format", string(f)),
		elog.Int("size", len(doc.Data)))
	return ginx.Result{}, ginx.ErrNoResponse
}

// Aggregate 登录之后才能拿到全部数据
func (h *Handler) Aggregate(ctx *gin.Context) {
	requestId := shortuuid.New()
	ctx.Header(requestIdHeader, requestId)
	gtx := &ginx.Context{Context: ctx}
	sess, err := h.sessionOf(gtx)
	if err != nil {
		h.logger.Warn("未登录访问导出数据",
			elog.String("requestId", requestId), elog.FieldErr(err))
		ctx.JSON(http.StatusUnauthorized, ErrorResp{Error: "Unauthorized"})
		return
	}
	p, err := h.svc.Aggregate(ctx, sess.Claims().Uid)
	if err != nil {
		h.logger.Error("聚合导出数据失败",
			elog.String("requestId", requestId), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "Failed to generate PDF"})
		return
	}
	ctx.JSON(http.StatusOK, newAggregate(p))
}
