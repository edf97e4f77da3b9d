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
	"errors"

	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type ProfileRepository interface {
	// Snapshot 直接读数据库，任何一个集合读取失败都会返回错误
	Snapshot(ctx context.Context, uid int64) (domain.Profile, error)
	// Profile 公开页面使用，优先读缓存
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
}

type CachedProfileRepository struct {
	personal     PersonalInfoRepository
	experiences  SectionRepository[domain.Experience]
	education    SectionRepository[domain.Education]
	skills       SectionRepository[domain.Skill]
	projects     SectionRepository[domain.Project]
	services     SectionRepository[domain.Service]
	testimonials SectionRepository[domain.Testimonial]
	cache        cache.ProfileCache
	logger       *elog.Component
}

func NewCachedProfileRepository(
	personal PersonalInfoRepository,
	experiences SectionRepository[domain.Experience],
	education SectionRepository[domain.Education],
	skills SectionRepository[domain.Skill],
	projects SectionRepository[domain.Project],
	services SectionRepository[domain.Service],
	testimonials SectionRepository[domain.Testimonial],
	c cache.ProfileCache) ProfileRepository {
	return &CachedProfileRepository{
		personal:     personal,
		experiences:  experiences,
		education:    education,
		skills:       skills,
		projects:     projects,
		services:     services,
		testimonials: testimonials,
		cache:        c,
		logger:       elog.DefaultLogger,
	}
}

func (r *CachedProfileRepository) Snapshot(ctx context.Context, uid int64) (domain.Profile, error) {
	var res domain.Profile
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		info, err := r.personal.Find(ctx, uid)
		// 没有个人信息不算错误，由调用者决定怎么处理
		if errors.Is(err, ErrRecordNotFound) {
			return nil
		}
		res.PersonalInfo = info
		return err
	})
	eg.Go(func() error {
		var err error
		res.Experiences, err = r.experiences.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Education, err = r.education.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Skills, err = r.skills.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Projects, err = r.projects.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Services, err = r.services.List(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Testimonials, err = r.testimonials.List(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Profile{}, err
	}
	return res, nil
}

func (r *CachedProfileRepository) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	res, err := r.cache.Get(ctx, uid)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		// 缓存出问题了，依旧回查数据库
		r.logger.Error("读取 profile 缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
	res, err = r.Snapshot(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	if err = r.cache.Set(ctx, uid, res); err != nil {
		r.logger.Error("回写 profile 缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
	return res, nil
}
