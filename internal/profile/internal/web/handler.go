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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 公开页面
type Handler struct {
	svc service.Service
	// 整个站点只展示这个 owner 的数据
	owner  int64
	logger *elog.Component
}

func NewHandler(svc service.Service, owner int64) *Handler {
	return &Handler{
		svc:    svc,
		owner:  owner,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/profile", ginx.W(h.Profile))
}

func (h *Handler) Profile(ctx *ginx.Context) (ginx.Result, error) {
	p, err := h.svc.Profile(ctx, h.owner)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: NewProfile(p),
	}, nil
}

// AdminHandler 管理端，个人信息和各类记录
type AdminHandler struct {
	svc         service.Service
	experience  *ExperienceHandler
	education   *EducationHandler
	skill       *SkillHandler
	project     *ProjectHandler
	service     *ServiceHandler
	testimonial *TestimonialHandler
}

func NewAdminHandler(svc service.Service,
	experience *ExperienceHandler,
	education *EducationHandler,
	skill *SkillHandler,
	project *ProjectHandler,
	srv *ServiceHandler,
	testimonial *TestimonialHandler) *AdminHandler {
	return &AdminHandler{
		svc:         svc,
		experience:  experience,
		education:   education,
		skill:       skill,
		project:     project,
		service:     srv,
		testimonial: testimonial,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/profile/personal/save", ginx.BS[PersonalInfo](h.SavePersonalInfo))
	server.GET("/profile/personal", ginx.S(h.PersonalInfo))
	h.experience.PrivateRoutes(server)
	h.education.PrivateRoutes(server)
	h.skill.PrivateRoutes(server)
	h.project.PrivateRoutes(server)
	h.service.PrivateRoutes(server)
	h.testimonial.PrivateRoutes(server)
}

func (h *AdminHandler) SavePersonalInfo(ctx *ginx.Context, req PersonalInfo, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SavePersonalInfo(ctx, req.toDomain(sess.Claims().Uid))
	if errors.Is(err, domain.ErrInvalidInput) {
		return invalidInputResult(err), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) PersonalInfo(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	info, err := h.svc.PersonalInfo(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrRecordNotFound) {
		return recordNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPersonalInfo(info),
	}, nil
}
