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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/cache"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type SectionRepository[D domain.Section] interface {
	Save(ctx context.Context, s D) (int64, error)
	Delete(ctx context.Context, uid, id int64) error
	List(ctx context.Context, uid int64) ([]D, error)
}

type sectionRepository[D domain.Section, E any] struct {
	dao      dao.SectionDAO[E]
	cache    cache.ProfileCache
	toDomain func(E) D
	toEntity func(D) E
	logger   *elog.Component
}

func newSectionRepository[D domain.Section, E any](d dao.SectionDAO[E], c cache.ProfileCache,
	toDomain func(E) D, toEntity func(D) E) SectionRepository[D] {
	return &sectionRepository[D, E]{
		dao:      d,
		cache:    c,
		toDomain: toDomain,
		toEntity: toEntity,
		logger:   elog.DefaultLogger,
	}
}

func NewExperienceRepository(d dao.SectionDAO[dao.Experience], c cache.ProfileCache) SectionRepository[domain.Experience] {
	return newSectionRepository(d, c, experienceToDomain, experienceToEntity)
}

func NewEducationRepository(d dao.SectionDAO[dao.Education], c cache.ProfileCache) SectionRepository[domain.Education] {
	return newSectionRepository(d, c, educationToDomain, educationToEntity)
}

func NewSkillRepository(d dao.SectionDAO[dao.Skill], c cache.ProfileCache) SectionRepository[domain.Skill] {
	return newSectionRepository(d, c, skillToDomain, skillToEntity)
}

func NewProjectRepository(d dao.SectionDAO[dao.Project], c cache.ProfileCache) SectionRepository[domain.Project] {
	return newSectionRepository(d, c, projectToDomain, projectToEntity)
}

func NewServiceRepository(d dao.SectionDAO[dao.Service], c cache.ProfileCache) SectionRepository[domain.Service] {
	return newSectionRepository(d, c, serviceToDomain, serviceToEntity)
}

func NewTestimonialRepository(d dao.SectionDAO[dao.Testimonial], c cache.ProfileCache) SectionRepository[domain.Testimonial] {
	return newSectionRepository(d, c, testimonialToDomain, testimonialToEntity)
}

func (r *sectionRepository[D, E]) Save(ctx context.Context, s D) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(s))
	if err != nil {
		return 0, err
	}
	r.evict(ctx, s.Owner())
	return id, nil
}

func (r *sectionRepository[D, E]) Delete(ctx context.Context, uid, id int64) error {
	err := r.dao.Delete(ctx, uid, id)
	if err != nil {
		return err
	}
	r.evict(ctx, uid)
	return nil
}

func (r *sectionRepository[D, E]) List(ctx context.Context, uid int64) ([]D, error) {
	res, err := r.dao.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src E) D {
		return r.toDomain(src)
	}), nil
}

// evict 写成功以后删除公开页面的缓存，删除失败只记录日志，缓存会自然过期
func (r *sectionRepository[D, E]) evict(ctx context.Context, uid int64) {
	if err := r.cache.Delete(ctx, uid); err != nil {
		r.logger.Error("删除 profile 缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
}
