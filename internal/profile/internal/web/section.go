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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/service"
	"github.com/gin-gonic/gin"
)

// vo 是可以转换为 D 的请求体
type vo[D domain.Section] interface {
	toDomain(uid int64) D
}

// SectionHandler 管理端对某一类有序记录的增删改查
type SectionHandler[D domain.Section, V vo[D]] struct {
	name string
	svc  service.SectionService[D]
	toVO func(D) V
}

type ExperienceHandler = SectionHandler[domain.Experience, Experience]
type EducationHandler = SectionHandler[domain.Education, Education]
type SkillHandler = SectionHandler[domain.Skill, Skill]
type ProjectHandler = SectionHandler[domain.Project, Project]
type ServiceHandler = SectionHandler[domain.Service, Service]
type TestimonialHandler = SectionHandler[domain.Testimonial, Testimonial]

func NewExperienceHandler(svc service.SectionService[domain.Experience]) *ExperienceHandler {
	return &ExperienceHandler{name: "experience", svc: svc, toVO: newExperience}
}

func NewEducationHandler(svc service.SectionService[domain.Education]) *EducationHandler {
	return &EducationHandler{name: "education", svc: svc, toVO: newEducation}
}

func NewSkillHandler(svc service.SectionService[domain.Skill]) *SkillHandler {
	return &SkillHandler{name: "skill", svc: svc, toVO: newSkill}
}

func NewProjectHandler(svc service.SectionService[domain.Project]) *ProjectHandler {
	return &ProjectHandler{name: "project", svc: svc, toVO: newProject}
}

func NewServiceHandler(svc service.SectionService[domain.Service]) *ServiceHandler {
	return &ServiceHandler{name: "service", svc: svc, toVO: newService}
}

func NewTestimonialHandler(svc service.SectionService[domain.Testimonial]) *TestimonialHandler {
	return &TestimonialHandler{name: "testimonial", svc: svc, toVO: newTestimonial}
}

func (h *SectionHandler[D, V]) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile/" + h.name)
	g.POST("/save", ginx.BS[V](h.Save))
	g.POST("/list", ginx.S(h.List))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
}

// Save 创建或者更新，如果 req 里面有 id 就是更新
func (h *SectionHandler[D, V]) Save(ctx *ginx.Context, req V, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	case errors.Is(err, domain.ErrInvalidInput):
		return invalidInputResult(err), nil
	case errors.Is(err, service.ErrRecordNotFound):
		return recordNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *SectionHandler[D, V]) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	list, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(list, func(idx int, src D) V {
			return h.toVO(src)
		}),
	}, nil
}

// Delete 删除不存在的记录也是成功
func (h *SectionHandler[D, V]) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "success",
	}, nil
}
