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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/portfolio/internal/contact/internal/domain"
	"github.com/ecodeclub/portfolio/internal/contact/internal/service"
	"github.com/gin-gonic/gin"
)

const defaultLimit = 50

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/contact/create", ginx.B[CreateReq](h.Create))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	sub, err := h.svc.Create(ctx, req.toDomain())
	if errors.Is(err, domain.ErrInvalidInput) {
		return invalidInputResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg:  "Thank you for your message! I'll get back to you soon.",
		Data: CreateResp{Ref: sub.Ref},
	}, nil
}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/contact")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.GET("/unread-count", ginx.W(h.UnreadCount))
	g.POST("/update-status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	list, err := h.svc.List(ctx, domain.Status(req.Status), req.Offset, limit)
	if errors.Is(err, domain.ErrInvalidStatus) {
		return invalidStatusResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(idx int, src domain.Submission) Submission {
			return newSubmission(src)
		}),
	}, nil
}

func (h *AdminHandler) UnreadCount(ctx *ginx.Context) (ginx.Result, error) {
	cnt, err := h.svc.UnreadCount(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: cnt,
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, req.Id, domain.Status(req.Status))
	if errors.Is(err, domain.ErrInvalidStatus) {
		return invalidStatusResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "success",
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.Delete(ctx, req.Id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "success",
	}, nil
}
